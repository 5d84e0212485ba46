package service

import (
	"context"
	"errors"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// ExerciseService exposes the global exercise catalog. Read-only: the API
// never mutates the catalog, only the seed command writes to it.
type ExerciseService interface {
	ListExercises(ctx context.Context, category, muscleGroup string) ([]domain.Exercise, error)
	GetExercise(ctx context.Context, id int64) (*domain.Exercise, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListMuscleGroups(ctx context.Context) ([]string, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

// ListExercises returns catalog entries, optionally filtered.
func (s *exerciseService) ListExercises(ctx context.Context, category, muscleGroup string) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx, repository.ExerciseFilter{
		Category:    category,
		MuscleGroup: muscleGroup,
	})
}

// GetExercise retrieves a single catalog entry.
func (s *exerciseService) GetExercise(ctx context.Context, id int64) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// ListCategories returns the distinct categories in the catalog.
func (s *exerciseService) ListCategories(ctx context.Context) ([]string, error) {
	return s.exerciseRepo.Categories(ctx)
}

// ListMuscleGroups returns the distinct muscle groups in the catalog.
func (s *exerciseService) ListMuscleGroups(ctx context.Context) ([]string, error) {
	return s.exerciseRepo.MuscleGroups(ctx)
}
