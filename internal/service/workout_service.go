package service

import (
	"context"
	"errors"
	"time"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrInvalidPlanRef marks a workout create referencing a plan that does
	// not exist or belongs to another user. A client fault, not a not-found:
	// the workout itself is fine, its reference is not.
	ErrInvalidPlanRef = errors.New("invalid workout plan")
)

// CreateWorkoutInput carries the fields for a new workout session.
type CreateWorkoutInput struct {
	PlanID        *int64
	Name          string
	ScheduledDate *time.Time
	Notes         string
}

// LogInput carries the fields for one appended workout log entry.
type LogInput struct {
	ExerciseID int64
	Sets       int
	Reps       int
	Weight     *float64
	RestTime   *int
	Notes      string
}

// WorkoutService tracks workout sessions and their per-exercise logs.
// Every operation is scoped by the owning user; a workout belonging to
// someone else is indistinguishable from a missing one.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, userID int64, input CreateWorkoutInput) (*domain.Workout, error)
	GetWorkout(ctx context.Context, workoutID, userID int64) (*domain.Workout, error)
	GetWorkouts(ctx context.Context, userID int64, filter repository.WorkoutFilter) ([]domain.Workout, error)
	UpdateWorkout(ctx context.Context, workoutID, userID int64, update domain.WorkoutUpdate) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, workoutID, userID int64) error
	AddLog(ctx context.Context, workoutID, userID int64, input LogInput) (*domain.WorkoutLog, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	planRepo    repository.WorkoutPlanRepository
	now         func() time.Time
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, planRepo repository.WorkoutPlanRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		planRepo:    planRepo,
		now:         time.Now,
	}
}

// CreateWorkout creates a session, optionally derived from a plan. A
// supplied plan reference must belong to the same user.
func (s *workoutService) CreateWorkout(ctx context.Context, userID int64, input CreateWorkoutInput) (*domain.Workout, error) {
	var v violations
	if input.Name == "" {
		v.addf("name is required")
	}
	if input.PlanID != nil && *input.PlanID <= 0 {
		v.addf("workout_plan_id must be a positive integer")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	if input.PlanID != nil {
		owned, err := s.planRepo.BelongsToUser(ctx, *input.PlanID, userID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, ErrInvalidPlanRef
		}
	}

	workout := &domain.Workout{
		UserID:        userID,
		PlanID:        input.PlanID,
		Name:          input.Name,
		ScheduledDate: input.ScheduledDate,
		Notes:         input.Notes,
	}

	if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrInvalidRef) {
			return nil, ErrInvalidPlanRef
		}
		return nil, err
	}
	return workout, nil
}

// GetWorkout retrieves one session with its logs.
func (s *workoutService) GetWorkout(ctx context.Context, workoutID, userID int64) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// GetWorkouts lists the user's sessions.
func (s *workoutService) GetWorkouts(ctx context.Context, userID int64, filter repository.WorkoutFilter) ([]domain.Workout, error) {
	if filter.Status != "" && !validStatus(domain.WorkoutStatus(filter.Status)) {
		var v violations
		v.addf("status must be one of scheduled, in_progress, completed, cancelled")
		return nil, v.err()
	}
	return s.workoutRepo.GetByUserID(ctx, userID, filter)
}

// UpdateWorkout applies a partial update: only supplied fields replace the
// stored values, updated_at is always refreshed. Transitioning the status
// to completed stamps completed_date so the session qualifies for progress
// reports; re-saving an already completed session keeps its stamp.
func (s *workoutService) UpdateWorkout(ctx context.Context, workoutID, userID int64, update domain.WorkoutUpdate) (*domain.Workout, error) {
	var v violations
	if update.Name != nil && *update.Name == "" {
		v.addf("name must not be empty")
	}
	if update.Status != nil && !validStatus(*update.Status) {
		v.addf("status must be one of scheduled, in_progress, completed, cancelled")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	var completedDate *time.Time
	if update.Status != nil && *update.Status == domain.StatusCompleted {
		// Stamp only on the transition into completed; re-saving an already
		// completed workout must not move it forward in the progress window.
		current, err := s.workoutRepo.GetByID(ctx, workoutID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrWorkoutNotFound
			}
			return nil, err
		}
		if current.Status != domain.StatusCompleted {
			now := s.now()
			completedDate = &now
		}
	}

	workout, err := s.workoutRepo.Update(ctx, workoutID, userID, update, completedDate)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// DeleteWorkout hard-deletes a session; its log rows cascade with it.
func (s *workoutService) DeleteWorkout(ctx context.Context, workoutID, userID int64) error {
	err := s.workoutRepo.Delete(ctx, workoutID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}

// AddLog appends one log entry to an owned workout. Append semantics:
// logging the same exercise twice produces two rows.
func (s *workoutService) AddLog(ctx context.Context, workoutID, userID int64, input LogInput) (*domain.WorkoutLog, error) {
	var v violations
	if input.ExerciseID <= 0 {
		v.addf("exercise_id must be a positive integer")
	}
	if input.Sets < 1 || input.Sets > 20 {
		v.addf("sets must be between 1 and 20")
	}
	if input.Reps < 1 || input.Reps > 100 {
		v.addf("reps must be between 1 and 100")
	}
	if input.Weight != nil && *input.Weight <= 0 {
		v.addf("weight must be positive")
	}
	if input.RestTime != nil && (*input.RestTime < 0 || *input.RestTime > 600) {
		v.addf("rest_time must be between 0 and 600")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	owned, err := s.workoutRepo.BelongsToUser(ctx, workoutID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrWorkoutNotFound
	}

	log := &domain.WorkoutLog{
		WorkoutID:  workoutID,
		ExerciseID: input.ExerciseID,
		Sets:       input.Sets,
		Reps:       input.Reps,
		Weight:     input.Weight,
		RestTime:   input.RestTime,
		Notes:      input.Notes,
	}

	if _, err := s.workoutRepo.AddLog(ctx, log); err != nil {
		if errors.Is(err, repository.ErrInvalidRef) {
			return nil, ErrInvalidExerciseRef
		}
		return nil, err
	}
	return log, nil
}

func validStatus(status domain.WorkoutStatus) bool {
	switch status {
	case domain.StatusScheduled, domain.StatusInProgress, domain.StatusCompleted, domain.StatusCancelled:
		return true
	}
	return false
}
