package domain

import (
	"time"
)

// ProgressReport is the derived view of a user's trailing-window activity.
// It is recomputed from workout logs on every call; nothing is cached or
// materialized.
type ProgressReport struct {
	PeriodDays        int                `json:"period_days"`
	CompletedWorkouts []CompletedWorkout `json:"completed_workouts"`
	ExerciseProgress  []ExerciseProgress `json:"exercise_progress"`
}

// CompletedWorkout summarizes one completed session inside the window.
// TotalVolume is sets×reps summed over the session's logs; weight is
// deliberately not a factor so it measures work performed, not load.
type CompletedWorkout struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	CompletedDate  *time.Time `json:"completed_date"`
	Notes          string     `json:"notes,omitempty"`
	TotalExercises int        `json:"total_exercises"`
	TotalVolume    int        `json:"total_volume"`
}

// ExerciseProgress summarizes weight progression for one exercise across
// the qualifying workouts. Max and Avg are nil when no log of the exercise
// carries a weight.
type ExerciseProgress struct {
	ExerciseID   int64    `json:"exercise_id"`
	ExerciseName string   `json:"exercise_name"`
	MaxWeight    *float64 `json:"max_weight"`
	AvgWeight    *float64 `json:"avg_weight"`
	WorkoutCount int      `json:"workout_count"`
}
