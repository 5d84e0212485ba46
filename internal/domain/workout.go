package domain

import (
	"time"
)

// WorkoutStatus tracks the lifecycle of a workout session.
// The store accepts any of these values at any time; transition legality
// is not enforced.
type WorkoutStatus string

const (
	StatusScheduled  WorkoutStatus = "scheduled"
	StatusInProgress WorkoutStatus = "in_progress"
	StatusCompleted  WorkoutStatus = "completed"
	StatusCancelled  WorkoutStatus = "cancelled"
)

// Workout is one scheduled or executed session, optionally derived from a
// plan. The plan reference is nulled (not cascaded) when the plan is
// deleted, so sessions survive their template.
type Workout struct {
	ID            int64         `json:"id"`
	UserID        int64         `json:"user_id"`
	PlanID        *int64        `json:"workout_plan_id,omitempty"`
	Name          string        `json:"name"`
	ScheduledDate *time.Time    `json:"scheduled_date,omitempty"`
	CompletedDate *time.Time    `json:"completed_date,omitempty"`
	Status        WorkoutStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// PlanName is joined in on reads when the plan reference is still set.
	PlanName *string `json:"plan_name,omitempty"`
	// Logs is populated on detail reads, ordered by CreatedAt ascending.
	Logs []WorkoutLog `json:"logs,omitempty"`
}

// WorkoutLog records actually performed sets/reps/weight for one exercise
// within one workout. Logs are append-only; multiple rows per exercise per
// workout are allowed.
type WorkoutLog struct {
	ID         int64     `json:"id"`
	WorkoutID  int64     `json:"workout_id"`
	ExerciseID int64     `json:"exercise_id"`
	Sets       int       `json:"sets"`
	Reps       int       `json:"reps"`
	Weight     *float64  `json:"weight,omitempty"`
	RestTime   *int      `json:"rest_time,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	// Catalog metadata joined in on reads.
	ExerciseName string           `json:"exercise_name,omitempty"`
	Description  string           `json:"description,omitempty"`
	Category     ExerciseCategory `json:"category,omitempty"`
	MuscleGroup  string           `json:"muscle_group,omitempty"`
}

// WorkoutUpdate carries a partial update for a workout. Nil fields keep
// their stored value (coalesce semantics); updated_at is always refreshed.
type WorkoutUpdate struct {
	Name          *string
	ScheduledDate *time.Time
	Status        *WorkoutStatus
	Notes         *string
}
