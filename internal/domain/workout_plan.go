package domain

import (
	"time"
)

// WorkoutPlan is a reusable named template listing exercises with target
// sets/reps/weight and an explicit order. Plans belong to exactly one user.
type WorkoutPlan struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// ExerciseCount is populated on list reads (count of junction rows).
	ExerciseCount int `json:"exercise_count,omitempty"`
	// Exercises is populated on detail reads, ordered by OrderIndex ascending.
	Exercises []PlanExercise `json:"exercises,omitempty"`
}

// PlanExercise is one junction row of a plan's ordered exercise list.
// Rows are replaced wholesale on every plan update, never patched
// individually, so a plan's exercise list is always consistent as a unit.
type PlanExercise struct {
	ID         int64     `json:"id"`
	PlanID     int64     `json:"workout_plan_id"`
	ExerciseID int64     `json:"exercise_id"`
	Sets       int       `json:"sets"`
	Reps       int       `json:"reps"`
	Weight     *float64  `json:"weight,omitempty"`
	RestTime   int       `json:"rest_time"` // Seconds between sets
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`

	// Catalog metadata joined in on reads.
	ExerciseName string           `json:"name,omitempty"`
	Description  string           `json:"description,omitempty"`
	Category     ExerciseCategory `json:"category,omitempty"`
	MuscleGroup  string           `json:"muscle_group,omitempty"`
}

// PlanExerciseInput carries the caller-supplied fields for one exercise item
// of a plan write. OrderIndex is stored as given; the composer does not
// recompute or normalize the sequence.
type PlanExerciseInput struct {
	ExerciseID int64
	Sets       int
	Reps       int
	Weight     *float64
	RestTime   int
	OrderIndex int
}
