package service

import (
	"context"
	"errors"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound       = errors.New("workout plan not found")
	ErrInvalidExerciseRef = errors.New("plan references an unknown exercise")
)

// PlanExerciseItem is one caller-supplied entry of a plan write.
type PlanExerciseItem struct {
	ExerciseID int64
	Sets       int
	Reps       int
	Weight     *float64
	RestTime   int
	OrderIndex int
}

// PlanService composes workout plans. Create and Update replace a plan's
// full exercise list atomically; partial lists are never visible.
type PlanService interface {
	CreatePlan(ctx context.Context, userID int64, name, description string, items []PlanExerciseItem) (*domain.WorkoutPlan, error)
	UpdatePlan(ctx context.Context, planID, userID int64, name, description string, items []PlanExerciseItem) (*domain.WorkoutPlan, error)
	GetPlan(ctx context.Context, planID, userID int64) (*domain.WorkoutPlan, error)
	GetPlans(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error)
	DeletePlan(ctx context.Context, planID, userID int64) error
}

// planService implements the PlanService interface.
type planService struct {
	planRepo repository.WorkoutPlanRepository
}

// NewPlanService creates a new instance of planService.
func NewPlanService(planRepo repository.WorkoutPlanRepository) PlanService {
	return &planService{planRepo: planRepo}
}

// CreatePlan validates the input and writes the plan with its ordered
// exercise list in one transaction.
func (s *planService) CreatePlan(ctx context.Context, userID int64, name, description string, items []PlanExerciseItem) (*domain.WorkoutPlan, error) {
	if err := validatePlanInput(name, items); err != nil {
		return nil, err
	}

	plan := &domain.WorkoutPlan{
		UserID:      userID,
		Name:        name,
		Description: description,
	}

	planID, err := s.planRepo.Create(ctx, plan, toInputs(items))
	if err != nil {
		if errors.Is(err, repository.ErrInvalidRef) {
			return nil, ErrInvalidExerciseRef
		}
		return nil, err
	}

	// Fetch again so the response carries the joined catalog metadata.
	return s.planRepo.GetByID(ctx, planID, userID)
}

// UpdatePlan replaces the plan's name, description and entire exercise list.
// On any failure the stored plan keeps its prior state.
func (s *planService) UpdatePlan(ctx context.Context, planID, userID int64, name, description string, items []PlanExerciseItem) (*domain.WorkoutPlan, error) {
	if err := validatePlanInput(name, items); err != nil {
		return nil, err
	}

	if err := s.planRepo.Replace(ctx, planID, userID, name, description, toInputs(items)); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrPlanNotFound
		case errors.Is(err, repository.ErrInvalidRef):
			return nil, ErrInvalidExerciseRef
		default:
			return nil, err
		}
	}

	return s.planRepo.GetByID(ctx, planID, userID)
}

// GetPlan retrieves one plan with its exercise list in order.
func (s *planService) GetPlan(ctx context.Context, planID, userID int64) (*domain.WorkoutPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// GetPlans lists the user's plans.
func (s *planService) GetPlans(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error) {
	return s.planRepo.GetByUserID(ctx, userID)
}

// DeletePlan removes a plan; the storage layer cascades the junction rows
// and nulls the plan reference on any workout that pointed to it.
func (s *planService) DeletePlan(ctx context.Context, planID, userID int64) error {
	err := s.planRepo.Delete(ctx, planID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPlanNotFound
	}
	return err
}

// validatePlanInput enforces the accepted shapes before any storage access.
// The caller-supplied order_index sequence is stored as-is; contiguity is
// not checked.
func validatePlanInput(name string, items []PlanExerciseItem) error {
	var v violations
	if name == "" {
		v.addf("name is required")
	}
	if len(items) == 0 {
		v.addf("exercises must contain at least one item")
	}
	for i, item := range items {
		if item.ExerciseID <= 0 {
			v.addf("exercises[%d].exercise_id must be a positive integer", i)
		}
		if item.Sets < 1 || item.Sets > 20 {
			v.addf("exercises[%d].sets must be between 1 and 20", i)
		}
		if item.Reps < 1 || item.Reps > 100 {
			v.addf("exercises[%d].reps must be between 1 and 100", i)
		}
		if item.Weight != nil && *item.Weight <= 0 {
			v.addf("exercises[%d].weight must be positive", i)
		}
		if item.RestTime < 0 || item.RestTime > 600 {
			v.addf("exercises[%d].rest_time must be between 0 and 600", i)
		}
		if item.OrderIndex < 0 {
			v.addf("exercises[%d].order_index must not be negative", i)
		}
	}
	return v.err()
}

func toInputs(items []PlanExerciseItem) []domain.PlanExerciseInput {
	inputs := make([]domain.PlanExerciseInput, len(items))
	for i, item := range items {
		inputs[i] = domain.PlanExerciseInput{
			ExerciseID: item.ExerciseID,
			Sets:       item.Sets,
			Reps:       item.Reps,
			Weight:     item.Weight,
			RestTime:   item.RestTime,
			OrderIndex: item.OrderIndex,
		}
	}
	return inputs
}
