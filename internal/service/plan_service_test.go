package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

func validItems() []PlanExerciseItem {
	return []PlanExerciseItem{
		{ExerciseID: 1, Sets: 3, Reps: 10, RestTime: 60, OrderIndex: 0},
		{ExerciseID: 2, Sets: 5, Reps: 5, Weight: floatPtr(100), RestTime: 120, OrderIndex: 1},
	}
}

func TestCreatePlan_Success(t *testing.T) {
	stored := &domain.WorkoutPlan{ID: 7, UserID: 42, Name: "Push Day"}
	repo := &mockPlanRepo{
		createFn: func(_ context.Context, plan *domain.WorkoutPlan, items []domain.PlanExerciseInput) (int64, error) {
			assert.Equal(t, int64(42), plan.UserID)
			assert.Equal(t, "Push Day", plan.Name)
			require.Len(t, items, 2)
			assert.Equal(t, int64(2), items[1].ExerciseID)
			assert.Equal(t, 1, items[1].OrderIndex)
			return 7, nil
		},
		byID: func(_ context.Context, planID, userID int64) (*domain.WorkoutPlan, error) {
			assert.Equal(t, int64(7), planID)
			assert.Equal(t, int64(42), userID)
			return stored, nil
		},
	}
	svc := NewPlanService(repo)

	plan, err := svc.CreatePlan(context.Background(), 42, "Push Day", "", validItems())
	require.NoError(t, err)
	assert.Same(t, stored, plan)
	assert.Equal(t, 1, repo.createCalls)
}

func TestCreatePlan_ValidationCollectsEveryViolation(t *testing.T) {
	repo := &mockPlanRepo{
		createFn: func(_ context.Context, _ *domain.WorkoutPlan, _ []domain.PlanExerciseInput) (int64, error) {
			t.Fatal("repository must not be reached on invalid input")
			return 0, nil
		},
	}
	svc := NewPlanService(repo)

	items := []PlanExerciseItem{
		{ExerciseID: 0, Sets: 21, Reps: 0, Weight: floatPtr(-5), RestTime: 601, OrderIndex: -1},
	}
	_, err := svc.CreatePlan(context.Background(), 1, "", "", items)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 7) // name plus every field of the item
	assert.Contains(t, verr.Violations, "name is required")
	assert.Contains(t, verr.Violations, "exercises[0].sets must be between 1 and 20")
	assert.Contains(t, verr.Violations, "exercises[0].reps must be between 1 and 100")
	assert.Contains(t, verr.Violations, "exercises[0].rest_time must be between 0 and 600")
	assert.Equal(t, 0, repo.createCalls)
}

func TestCreatePlan_EmptyExerciseListRejected(t *testing.T) {
	svc := NewPlanService(&mockPlanRepo{})

	_, err := svc.CreatePlan(context.Background(), 1, "Leg Day", "", nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations, "exercises must contain at least one item")
}

func TestCreatePlan_BoundaryValuesAccepted(t *testing.T) {
	repo := &mockPlanRepo{
		createFn: func(_ context.Context, _ *domain.WorkoutPlan, _ []domain.PlanExerciseInput) (int64, error) {
			return 3, nil
		},
		byID: func(_ context.Context, _, _ int64) (*domain.WorkoutPlan, error) {
			return &domain.WorkoutPlan{ID: 3}, nil
		},
	}
	svc := NewPlanService(repo)

	items := []PlanExerciseItem{
		{ExerciseID: 1, Sets: 1, Reps: 1, RestTime: 0, OrderIndex: 0},
		{ExerciseID: 2, Sets: 20, Reps: 100, RestTime: 600, OrderIndex: 5}, // gaps in order are fine
	}
	_, err := svc.CreatePlan(context.Background(), 1, "Edges", "", items)
	require.NoError(t, err)
}

func TestCreatePlan_UnknownExerciseRef(t *testing.T) {
	repo := &mockPlanRepo{
		createFn: func(_ context.Context, _ *domain.WorkoutPlan, _ []domain.PlanExerciseInput) (int64, error) {
			return 0, repository.ErrInvalidRef
		},
	}
	svc := NewPlanService(repo)

	_, err := svc.CreatePlan(context.Background(), 1, "Push Day", "", validItems())
	assert.ErrorIs(t, err, ErrInvalidExerciseRef)
}

func TestUpdatePlan_ReplacesListWholesale(t *testing.T) {
	var gotItems []domain.PlanExerciseInput
	repo := &mockPlanRepo{
		replaceFn: func(_ context.Context, planID, userID int64, name, _ string, items []domain.PlanExerciseInput) error {
			assert.Equal(t, int64(9), planID)
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "Renamed", name)
			gotItems = items
			return nil
		},
		byID: func(_ context.Context, _, _ int64) (*domain.WorkoutPlan, error) {
			return &domain.WorkoutPlan{ID: 9, Name: "Renamed"}, nil
		},
	}
	svc := NewPlanService(repo)

	plan, err := svc.UpdatePlan(context.Background(), 9, 42, "Renamed", "", validItems())
	require.NoError(t, err)
	assert.Equal(t, "Renamed", plan.Name)
	assert.Len(t, gotItems, 2)
}

func TestUpdatePlan_NotOwnedLooksLikeMissing(t *testing.T) {
	repo := &mockPlanRepo{
		replaceFn: func(_ context.Context, _, _ int64, _, _ string, _ []domain.PlanExerciseInput) error {
			return repository.ErrNotFound
		},
	}
	svc := NewPlanService(repo)

	_, err := svc.UpdatePlan(context.Background(), 9, 99, "Renamed", "", validItems())
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestUpdatePlan_UnknownExerciseRef(t *testing.T) {
	repo := &mockPlanRepo{
		replaceFn: func(_ context.Context, _, _ int64, _, _ string, _ []domain.PlanExerciseInput) error {
			return repository.ErrInvalidRef
		},
	}
	svc := NewPlanService(repo)

	_, err := svc.UpdatePlan(context.Background(), 9, 42, "Renamed", "", validItems())
	assert.ErrorIs(t, err, ErrInvalidExerciseRef)
}

func TestGetPlan_NotFound(t *testing.T) {
	repo := &mockPlanRepo{
		byID: func(_ context.Context, _, _ int64) (*domain.WorkoutPlan, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewPlanService(repo)

	_, err := svc.GetPlan(context.Background(), 123, 1)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestDeletePlan_NotFound(t *testing.T) {
	repo := &mockPlanRepo{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return repository.ErrNotFound
		},
	}
	svc := NewPlanService(repo)

	err := svc.DeletePlan(context.Background(), 123, 1)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestDeletePlan_PassesThroughStorageError(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &mockPlanRepo{
		deleteFn: func(_ context.Context, _, _ int64) error { return boom },
	}
	svc := NewPlanService(repo)

	err := svc.DeletePlan(context.Background(), 1, 1)
	assert.ErrorIs(t, err, boom)
}
