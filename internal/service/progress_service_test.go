package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workout-tracker/internal/domain"
)

func newProgressService(repo *mockWorkoutRepo, now time.Time) ProgressService {
	svc := NewProgressService(repo).(*progressService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestGetProgress_VolumeIsSetsTimesReps(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	completed := now.Add(-24 * time.Hour)
	repo := &mockWorkoutRepo{
		sinceFn: func(_ context.Context, _ int64, _ time.Time) ([]domain.Workout, error) {
			return []domain.Workout{{
				ID: 1, Name: "Push Day", CompletedDate: &completed,
				Logs: []domain.WorkoutLog{
					{ExerciseID: 1, ExerciseName: "Bench Press", Sets: 3, Reps: 10, Weight: floatPtr(80)},
					{ExerciseID: 2, ExerciseName: "Overhead Press", Sets: 2, Reps: 8, Weight: floatPtr(40)},
				},
			}}, nil
		},
	}
	svc := newProgressService(repo, now)

	report, err := svc.GetProgress(context.Background(), 42, 30)
	require.NoError(t, err)
	require.Len(t, report.CompletedWorkouts, 1)
	assert.Equal(t, 46, report.CompletedWorkouts[0].TotalVolume) // 3*10 + 2*8
	assert.Equal(t, 2, report.CompletedWorkouts[0].TotalExercises)
}

func TestGetProgress_WeightStatsIgnoreNullWeights(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	completed := now.Add(-24 * time.Hour)
	repo := &mockWorkoutRepo{
		sinceFn: func(_ context.Context, _ int64, _ time.Time) ([]domain.Workout, error) {
			return []domain.Workout{{
				ID: 1, CompletedDate: &completed,
				Logs: []domain.WorkoutLog{
					{ExerciseID: 1, ExerciseName: "Squats", Sets: 5, Reps: 5, Weight: floatPtr(100)},
					{ExerciseID: 1, ExerciseName: "Squats", Sets: 5, Reps: 5, Weight: floatPtr(120)},
					{ExerciseID: 1, ExerciseName: "Squats", Sets: 5, Reps: 5, Weight: nil},
				},
			}}, nil
		},
	}
	svc := newProgressService(repo, now)

	report, err := svc.GetProgress(context.Background(), 42, 30)
	require.NoError(t, err)
	require.Len(t, report.ExerciseProgress, 1)

	squats := report.ExerciseProgress[0]
	require.NotNil(t, squats.MaxWeight)
	require.NotNil(t, squats.AvgWeight)
	assert.Equal(t, 120.0, *squats.MaxWeight)
	assert.Equal(t, 110.0, *squats.AvgWeight) // (100+120)/2, the weightless log does not count
	assert.Equal(t, 1, squats.WorkoutCount)
}

func TestGetProgress_AllNullWeightsStillListed(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	completed := now.Add(-24 * time.Hour)
	repo := &mockWorkoutRepo{
		sinceFn: func(_ context.Context, _ int64, _ time.Time) ([]domain.Workout, error) {
			return []domain.Workout{{
				ID: 1, CompletedDate: &completed,
				Logs: []domain.WorkoutLog{
					{ExerciseID: 7, ExerciseName: "Plank", Sets: 3, Reps: 1, Weight: nil},
				},
			}}, nil
		},
	}
	svc := newProgressService(repo, now)

	report, err := svc.GetProgress(context.Background(), 42, 30)
	require.NoError(t, err)
	require.Len(t, report.ExerciseProgress, 1)
	plank := report.ExerciseProgress[0]
	assert.Equal(t, "Plank", plank.ExerciseName)
	assert.Nil(t, plank.MaxWeight)
	assert.Nil(t, plank.AvgWeight)
	assert.Equal(t, 1, plank.WorkoutCount)
}

func TestGetProgress_WorkoutCountIsDistinct(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	d1 := now.Add(-24 * time.Hour)
	d2 := now.Add(-48 * time.Hour)
	repo := &mockWorkoutRepo{
		sinceFn: func(_ context.Context, _ int64, _ time.Time) ([]domain.Workout, error) {
			return []domain.Workout{
				{ID: 1, CompletedDate: &d1, Logs: []domain.WorkoutLog{
					{ExerciseID: 1, ExerciseName: "Deadlift", Sets: 1, Reps: 5, Weight: floatPtr(140)},
					{ExerciseID: 1, ExerciseName: "Deadlift", Sets: 1, Reps: 3, Weight: floatPtr(150)},
				}},
				{ID: 2, CompletedDate: &d2, Logs: []domain.WorkoutLog{
					{ExerciseID: 1, ExerciseName: "Deadlift", Sets: 1, Reps: 5, Weight: floatPtr(130)},
				}},
			}, nil
		},
	}
	svc := newProgressService(repo, now)

	report, err := svc.GetProgress(context.Background(), 42, 30)
	require.NoError(t, err)
	require.Len(t, report.ExerciseProgress, 1)
	// Three logs across two workouts count as two.
	assert.Equal(t, 2, report.ExerciseProgress[0].WorkoutCount)
	assert.Equal(t, 150.0, *report.ExerciseProgress[0].MaxWeight)
}

func TestGetProgress_CutoffIsNowMinusWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	var gotCutoff time.Time
	repo := &mockWorkoutRepo{
		sinceFn: func(_ context.Context, userID int64, cutoff time.Time) ([]domain.Workout, error) {
			assert.Equal(t, int64(42), userID)
			gotCutoff = cutoff
			return nil, nil
		},
	}
	svc := newProgressService(repo, now)

	report, err := svc.GetProgress(context.Background(), 42, 7)
	require.NoError(t, err)
	assert.True(t, gotCutoff.Equal(now.AddDate(0, 0, -7)))
	assert.Equal(t, 7, report.PeriodDays)
}

func TestGetProgress_DefaultWindowIs30Days(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	var gotCutoff time.Time
	repo := &mockWorkoutRepo{
		sinceFn: func(_ context.Context, _ int64, cutoff time.Time) ([]domain.Workout, error) {
			gotCutoff = cutoff
			return nil, nil
		},
	}
	svc := newProgressService(repo, now)

	report, err := svc.GetProgress(context.Background(), 42, 0)
	require.NoError(t, err)
	assert.True(t, gotCutoff.Equal(now.AddDate(0, 0, -30)))
	assert.Equal(t, 30, report.PeriodDays)
}

func TestGetProgress_EmptyWindowYieldsEmptyReport(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := &mockWorkoutRepo{
		sinceFn: func(_ context.Context, _ int64, _ time.Time) ([]domain.Workout, error) {
			return nil, nil
		},
	}
	svc := newProgressService(repo, now)

	report, err := svc.GetProgress(context.Background(), 42, 90)
	require.NoError(t, err)
	assert.Equal(t, 90, report.PeriodDays)
	assert.NotNil(t, report.CompletedWorkouts)
	assert.Empty(t, report.CompletedWorkouts)
	assert.NotNil(t, report.ExerciseProgress)
	assert.Empty(t, report.ExerciseProgress)
}

func TestGetProgress_SortedByMaxWeightDescending(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	completed := now.Add(-24 * time.Hour)
	repo := &mockWorkoutRepo{
		sinceFn: func(_ context.Context, _ int64, _ time.Time) ([]domain.Workout, error) {
			return []domain.Workout{{
				ID: 1, CompletedDate: &completed,
				Logs: []domain.WorkoutLog{
					{ExerciseID: 1, ExerciseName: "Bicep Curls", Sets: 3, Reps: 12, Weight: floatPtr(15)},
					{ExerciseID: 2, ExerciseName: "Squats", Sets: 5, Reps: 5, Weight: floatPtr(120)},
					{ExerciseID: 3, ExerciseName: "Plank", Sets: 3, Reps: 1},
				},
			}}, nil
		},
	}
	svc := newProgressService(repo, now)

	report, err := svc.GetProgress(context.Background(), 42, 30)
	require.NoError(t, err)
	require.Len(t, report.ExerciseProgress, 3)
	assert.Equal(t, "Squats", report.ExerciseProgress[0].ExerciseName)
	assert.Equal(t, "Bicep Curls", report.ExerciseProgress[1].ExerciseName)
	// Weightless exercises sort last.
	assert.Equal(t, "Plank", report.ExerciseProgress[2].ExerciseName)
}
