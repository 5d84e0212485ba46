package domain

import (
	"time"
)

// ExerciseCategory classifies an exercise in the catalog.
type ExerciseCategory string

const (
	CategoryCardio      ExerciseCategory = "cardio"
	CategoryStrength    ExerciseCategory = "strength"
	CategoryFlexibility ExerciseCategory = "flexibility"
)

// Exercise is a single entry in the global exercise catalog.
// The catalog is shared between all users and read-only through the API;
// rows are created by the seed command only.
type Exercise struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Category    ExerciseCategory `json:"category"`
	MuscleGroup string           `json:"muscle_group,omitempty"` // e.g. "chest", "legs", "full_body"
	CreatedAt   time.Time        `json:"created_at"`
}
