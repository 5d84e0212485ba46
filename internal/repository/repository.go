package repository

import (
	"context"
	"time"

	"workout-tracker/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound   = RepositoryError("not found")
	ErrDuplicate  = RepositoryError("duplicate value")
	ErrInvalidRef = RepositoryError("invalid reference")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// ExistsByEmailOrUsername reports whether either value is already taken.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}

// ExerciseFilter narrows catalog list reads; zero values mean "no filter".
type ExerciseFilter struct {
	Category    string
	MuscleGroup string
}

// ExerciseRepository defines the interface for the read-only exercise catalog.
type ExerciseRepository interface {
	List(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
	Categories(ctx context.Context) ([]string, error)
	MuscleGroups(ctx context.Context) ([]string, error)
}

// WorkoutPlanRepository defines the interface for workout plan data.
// Create and Replace must write the plan row and its full exercise list in
// a single transaction; a reader never observes a partial list.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan, items []domain.PlanExerciseInput) (int64, error)
	Replace(ctx context.Context, planID, userID int64, name, description string, items []domain.PlanExerciseInput) error
	GetByID(ctx context.Context, planID, userID int64) (*domain.WorkoutPlan, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error)
	// BelongsToUser reports whether the plan exists and is owned by the user.
	BelongsToUser(ctx context.Context, planID, userID int64) (bool, error)
	Delete(ctx context.Context, planID, userID int64) error
}

// WorkoutFilter narrows workout list reads.
type WorkoutFilter struct {
	Status string
	Limit  int
	Offset int
}

// WorkoutRepository defines the interface for workout sessions and their logs.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (int64, error)
	GetByID(ctx context.Context, workoutID, userID int64) (*domain.Workout, error)
	GetByUserID(ctx context.Context, userID int64, filter WorkoutFilter) ([]domain.Workout, error)
	Update(ctx context.Context, workoutID, userID int64, update domain.WorkoutUpdate, completedDate *time.Time) (*domain.Workout, error)
	Delete(ctx context.Context, workoutID, userID int64) error
	// BelongsToUser reports whether the workout exists and is owned by the user.
	BelongsToUser(ctx context.Context, workoutID, userID int64) (bool, error)
	AddLog(ctx context.Context, log *domain.WorkoutLog) (int64, error)
	GetLogs(ctx context.Context, workoutID int64) ([]domain.WorkoutLog, error)
	// CompletedSince returns the user's completed workouts with completed_date
	// at or after the cutoff, each with its logs attached, ordered by
	// completed_date descending. Feeds the progress aggregation.
	CompletedSince(ctx context.Context, userID int64, cutoff time.Time) ([]domain.Workout, error)
}
