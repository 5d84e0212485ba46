package service

import (
	"context"
	"sort"
	"time"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// DefaultProgressWindowDays is the trailing window used when the caller
// does not supply one.
const DefaultProgressWindowDays = 30

// ProgressService derives trailing-window progress reports from completed
// workouts and their logs. Pure read-side computation: every call works
// from the stored rows, nothing is cached.
type ProgressService interface {
	GetProgress(ctx context.Context, userID int64, windowDays int) (*domain.ProgressReport, error)
}

// progressService implements the ProgressService interface.
type progressService struct {
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(workoutRepo repository.WorkoutRepository) ProgressService {
	return &progressService{
		workoutRepo: workoutRepo,
		now:         time.Now,
	}
}

// exerciseAccum collects per-exercise figures while walking the logs.
type exerciseAccum struct {
	exerciseID  int64
	name        string
	maxWeight   *float64
	weightSum   float64
	weightCount int
	workoutIDs  map[int64]struct{}
}

// GetProgress builds the report for one user. The cutoff instant is
// "now minus windowDays days", computed once per call; a workout completed
// exactly at the cutoff is included.
func (s *progressService) GetProgress(ctx context.Context, userID int64, windowDays int) (*domain.ProgressReport, error) {
	if windowDays <= 0 {
		windowDays = DefaultProgressWindowDays
	}
	cutoff := s.now().AddDate(0, 0, -windowDays)

	workouts, err := s.workoutRepo.CompletedSince(ctx, userID, cutoff)
	if err != nil {
		return nil, err
	}

	report := &domain.ProgressReport{
		PeriodDays:        windowDays,
		CompletedWorkouts: make([]domain.CompletedWorkout, 0, len(workouts)),
		ExerciseProgress:  []domain.ExerciseProgress{},
	}

	accums := make(map[int64]*exerciseAccum)
	for _, workout := range workouts {
		summary := domain.CompletedWorkout{
			ID:             workout.ID,
			Name:           workout.Name,
			CompletedDate:  workout.CompletedDate,
			Notes:          workout.Notes,
			TotalExercises: len(workout.Logs),
		}

		for _, log := range workout.Logs {
			// Volume counts sets×reps only; weight never factors in.
			summary.TotalVolume += log.Sets * log.Reps

			accum, ok := accums[log.ExerciseID]
			if !ok {
				accum = &exerciseAccum{
					exerciseID: log.ExerciseID,
					name:       log.ExerciseName,
					workoutIDs: make(map[int64]struct{}),
				}
				accums[log.ExerciseID] = accum
			}
			accum.workoutIDs[workout.ID] = struct{}{}
			if log.Weight != nil {
				accum.weightSum += *log.Weight
				accum.weightCount++
				if accum.maxWeight == nil || *log.Weight > *accum.maxWeight {
					w := *log.Weight
					accum.maxWeight = &w
				}
			}
		}

		report.CompletedWorkouts = append(report.CompletedWorkouts, summary)
	}

	for _, accum := range accums {
		progress := domain.ExerciseProgress{
			ExerciseID:   accum.exerciseID,
			ExerciseName: accum.name,
			MaxWeight:    accum.maxWeight,
			WorkoutCount: len(accum.workoutIDs),
		}
		// Average over logged weights only; an exercise logged without any
		// weight still appears, with null max and avg.
		if accum.weightCount > 0 {
			avg := accum.weightSum / float64(accum.weightCount)
			progress.AvgWeight = &avg
		}
		report.ExerciseProgress = append(report.ExerciseProgress, progress)
	}

	sort.Slice(report.ExerciseProgress, func(i, j int) bool {
		a, b := report.ExerciseProgress[i], report.ExerciseProgress[j]
		switch {
		case a.MaxWeight == nil && b.MaxWeight == nil:
			return a.ExerciseName < b.ExerciseName
		case a.MaxWeight == nil:
			return false
		case b.MaxWeight == nil:
			return true
		case *a.MaxWeight != *b.MaxWeight:
			return *a.MaxWeight > *b.MaxWeight
		default:
			return a.ExerciseName < b.ExerciseName
		}
	})

	return report, nil
}
