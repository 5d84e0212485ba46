package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// pgExerciseRepository implements repository.ExerciseRepository.
// The catalog is global and read-only through the API; only the seed
// command writes to it.
type pgExerciseRepository struct {
	db *pgxpool.Pool
}

// NewExerciseRepository creates a new exercise catalog repository.
func NewExerciseRepository(db *pgxpool.Pool) repository.ExerciseRepository {
	return &pgExerciseRepository{db: db}
}

// List returns catalog entries, optionally filtered by category and/or
// muscle group, ordered by name.
func (r *pgExerciseRepository) List(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	query := `SELECT id, name, description, category, muscle_group, created_at FROM exercises`
	args := []any{}

	conditions := ""
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = fmt.Sprintf(" WHERE category = $%d", len(args))
	}
	if filter.MuscleGroup != "" {
		args = append(args, filter.MuscleGroup)
		if conditions == "" {
			conditions = fmt.Sprintf(" WHERE muscle_group = $%d", len(args))
		} else {
			conditions += fmt.Sprintf(" AND muscle_group = $%d", len(args))
		}
	}
	query += conditions + ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	exercises := []domain.Exercise{}
	for rows.Next() {
		var ex domain.Exercise
		var description, muscleGroup *string
		if err := rows.Scan(&ex.ID, &ex.Name, &description, &ex.Category, &muscleGroup, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		if description != nil {
			ex.Description = *description
		}
		if muscleGroup != nil {
			ex.MuscleGroup = *muscleGroup
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

// GetByID retrieves a single catalog entry.
func (r *pgExerciseRepository) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	var ex domain.Exercise
	var description, muscleGroup *string
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, category, muscle_group, created_at
		 FROM exercises WHERE id = $1`,
		id,
	).Scan(&ex.ID, &ex.Name, &description, &ex.Category, &muscleGroup, &ex.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan exercise: %w", err)
	}
	if description != nil {
		ex.Description = *description
	}
	if muscleGroup != nil {
		ex.MuscleGroup = *muscleGroup
	}
	return &ex, nil
}

// Categories returns the distinct categories present in the catalog.
func (r *pgExerciseRepository) Categories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT category FROM exercises ORDER BY category`)
}

// MuscleGroups returns the distinct non-null muscle groups in the catalog.
func (r *pgExerciseRepository) MuscleGroups(ctx context.Context) ([]string, error) {
	return r.distinct(ctx,
		`SELECT DISTINCT muscle_group FROM exercises WHERE muscle_group IS NOT NULL ORDER BY muscle_group`)
}

func (r *pgExerciseRepository) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query distinct values: %w", err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan value: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
