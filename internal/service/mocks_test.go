package service

import (
	"context"
	"time"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// Function-field mocks: tests set only the methods they expect to be hit,
// everything else fails loudly via the nil deref.

type mockUserRepo struct {
	createFn func(ctx context.Context, user *domain.User) (int64, error)
	byEmail  func(ctx context.Context, email string) (*domain.User, error)
	byID     func(ctx context.Context, id int64) (*domain.User, error)
	existsFn func(ctx context.Context, email, username string) (bool, error)
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.byEmail(ctx, email)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.byID(ctx, id)
}

func (m *mockUserRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	return m.existsFn(ctx, email, username)
}

type mockPlanRepo struct {
	createFn    func(ctx context.Context, plan *domain.WorkoutPlan, items []domain.PlanExerciseInput) (int64, error)
	replaceFn   func(ctx context.Context, planID, userID int64, name, description string, items []domain.PlanExerciseInput) error
	byID        func(ctx context.Context, planID, userID int64) (*domain.WorkoutPlan, error)
	byUserID    func(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error)
	belongsFn   func(ctx context.Context, planID, userID int64) (bool, error)
	deleteFn    func(ctx context.Context, planID, userID int64) error
	createCalls int
}

var _ repository.WorkoutPlanRepository = (*mockPlanRepo)(nil)

func (m *mockPlanRepo) Create(ctx context.Context, plan *domain.WorkoutPlan, items []domain.PlanExerciseInput) (int64, error) {
	m.createCalls++
	return m.createFn(ctx, plan, items)
}

func (m *mockPlanRepo) Replace(ctx context.Context, planID, userID int64, name, description string, items []domain.PlanExerciseInput) error {
	return m.replaceFn(ctx, planID, userID, name, description, items)
}

func (m *mockPlanRepo) GetByID(ctx context.Context, planID, userID int64) (*domain.WorkoutPlan, error) {
	return m.byID(ctx, planID, userID)
}

func (m *mockPlanRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error) {
	return m.byUserID(ctx, userID)
}

func (m *mockPlanRepo) BelongsToUser(ctx context.Context, planID, userID int64) (bool, error) {
	return m.belongsFn(ctx, planID, userID)
}

func (m *mockPlanRepo) Delete(ctx context.Context, planID, userID int64) error {
	return m.deleteFn(ctx, planID, userID)
}

type mockWorkoutRepo struct {
	createFn   func(ctx context.Context, workout *domain.Workout) (int64, error)
	byID       func(ctx context.Context, workoutID, userID int64) (*domain.Workout, error)
	byUserID   func(ctx context.Context, userID int64, filter repository.WorkoutFilter) ([]domain.Workout, error)
	updateFn   func(ctx context.Context, workoutID, userID int64, update domain.WorkoutUpdate, completedDate *time.Time) (*domain.Workout, error)
	deleteFn   func(ctx context.Context, workoutID, userID int64) error
	belongsFn  func(ctx context.Context, workoutID, userID int64) (bool, error)
	addLogFn   func(ctx context.Context, log *domain.WorkoutLog) (int64, error)
	logsFn     func(ctx context.Context, workoutID int64) ([]domain.WorkoutLog, error)
	sinceFn    func(ctx context.Context, userID int64, cutoff time.Time) ([]domain.Workout, error)
	addLogCall int
}

var _ repository.WorkoutRepository = (*mockWorkoutRepo)(nil)

func (m *mockWorkoutRepo) Create(ctx context.Context, workout *domain.Workout) (int64, error) {
	return m.createFn(ctx, workout)
}

func (m *mockWorkoutRepo) GetByID(ctx context.Context, workoutID, userID int64) (*domain.Workout, error) {
	return m.byID(ctx, workoutID, userID)
}

func (m *mockWorkoutRepo) GetByUserID(ctx context.Context, userID int64, filter repository.WorkoutFilter) ([]domain.Workout, error) {
	return m.byUserID(ctx, userID, filter)
}

func (m *mockWorkoutRepo) Update(ctx context.Context, workoutID, userID int64, update domain.WorkoutUpdate, completedDate *time.Time) (*domain.Workout, error) {
	return m.updateFn(ctx, workoutID, userID, update, completedDate)
}

func (m *mockWorkoutRepo) Delete(ctx context.Context, workoutID, userID int64) error {
	return m.deleteFn(ctx, workoutID, userID)
}

func (m *mockWorkoutRepo) BelongsToUser(ctx context.Context, workoutID, userID int64) (bool, error) {
	return m.belongsFn(ctx, workoutID, userID)
}

func (m *mockWorkoutRepo) AddLog(ctx context.Context, log *domain.WorkoutLog) (int64, error) {
	m.addLogCall++
	return m.addLogFn(ctx, log)
}

func (m *mockWorkoutRepo) GetLogs(ctx context.Context, workoutID int64) ([]domain.WorkoutLog, error) {
	return m.logsFn(ctx, workoutID)
}

func (m *mockWorkoutRepo) CompletedSince(ctx context.Context, userID int64, cutoff time.Time) ([]domain.Workout, error) {
	return m.sinceFn(ctx, userID, cutoff)
}

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func int64Ptr(i int64) *int64 { return &i }

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
