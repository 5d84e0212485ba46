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

// pgWorkoutPlanRepository implements repository.WorkoutPlanRepository.
//
// Plan writes touch two tables (the plan row and its junction rows) and run
// inside a single transaction so that a concurrent reader never observes an
// empty or partial exercise list. There is no additional serialization
// between two writers of the same plan; last commit wins.
type pgWorkoutPlanRepository struct {
	db *pgxpool.Pool
}

// NewWorkoutPlanRepository creates a new workout plan repository.
func NewWorkoutPlanRepository(db *pgxpool.Pool) repository.WorkoutPlanRepository {
	return &pgWorkoutPlanRepository{db: db}
}

// Create inserts the plan row and its full exercise list atomically and
// returns the generated plan id.
func (r *pgWorkoutPlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan, items []domain.PlanExerciseInput) (int64, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`INSERT INTO workout_plans (user_id, name, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		plan.UserID, plan.Name, nullIfEmpty(plan.Description),
	)
	if err := row.Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
		return 0, fmt.Errorf("insert workout plan: %w", err)
	}

	if err := insertPlanExercises(ctx, tx, plan.ID, items); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit plan create: %w", err)
	}
	return plan.ID, nil
}

// Replace updates the plan row and swaps its entire exercise list
// (delete-all-then-reinsert) in one transaction. On any failure the plan
// retains its prior state.
func (r *pgWorkoutPlanRepository) Replace(ctx context.Context, planID, userID int64, name, description string, items []domain.PlanExerciseInput) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Ownership check inside the transaction; "exists but not owned" is
	// indistinguishable from "does not exist".
	var existing int64
	err = tx.QueryRow(ctx,
		`SELECT id FROM workout_plans WHERE id = $1 AND user_id = $2`,
		planID, userID,
	).Scan(&existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("check plan ownership: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE workout_plans
		 SET name = $1, description = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		name, nullIfEmpty(description), planID,
	); err != nil {
		return fmt.Errorf("update workout plan: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM workout_exercises WHERE workout_plan_id = $1`, planID,
	); err != nil {
		return fmt.Errorf("delete plan exercises: %w", err)
	}

	if err := insertPlanExercises(ctx, tx, planID, items); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit plan replace: %w", err)
	}
	return nil
}

// insertPlanExercises writes one junction row per item, preserving the
// caller-supplied order_index verbatim.
func insertPlanExercises(ctx context.Context, tx pgx.Tx, planID int64, items []domain.PlanExerciseInput) error {
	const stmt = `INSERT INTO workout_exercises
		(workout_plan_id, exercise_id, sets, reps, weight, rest_time, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, item := range items {
		if _, err := tx.Exec(ctx, stmt,
			planID, item.ExerciseID, item.Sets, item.Reps,
			item.Weight, item.RestTime, item.OrderIndex,
		); err != nil {
			if isForeignKeyViolation(err) {
				return repository.ErrInvalidRef
			}
			return fmt.Errorf("insert plan exercise: %w", err)
		}
	}
	return nil
}

// GetByID retrieves a plan with its exercise list joined to the catalog,
// ordered by order_index ascending. The ordering is a hard contract; the
// client renders the list as numbered.
func (r *pgWorkoutPlanRepository) GetByID(ctx context.Context, planID, userID int64) (*domain.WorkoutPlan, error) {
	plan, err := r.scanPlan(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT we.id, we.workout_plan_id, we.exercise_id, we.sets, we.reps,
		        we.weight, we.rest_time, we.order_index, we.created_at,
		        e.name, e.description, e.category, e.muscle_group
		 FROM workout_exercises we
		 JOIN exercises e ON we.exercise_id = e.id
		 WHERE we.workout_plan_id = $1
		 ORDER BY we.order_index`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("query plan exercises: %w", err)
	}
	defer rows.Close()

	plan.Exercises = []domain.PlanExercise{}
	for rows.Next() {
		var pe domain.PlanExercise
		var description, muscleGroup *string
		if err := rows.Scan(
			&pe.ID, &pe.PlanID, &pe.ExerciseID, &pe.Sets, &pe.Reps,
			&pe.Weight, &pe.RestTime, &pe.OrderIndex, &pe.CreatedAt,
			&pe.ExerciseName, &description, &pe.Category, &muscleGroup,
		); err != nil {
			return nil, fmt.Errorf("scan plan exercise: %w", err)
		}
		if description != nil {
			pe.Description = *description
		}
		if muscleGroup != nil {
			pe.MuscleGroup = *muscleGroup
		}
		plan.Exercises = append(plan.Exercises, pe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	plan.ExerciseCount = len(plan.Exercises)
	return plan, nil
}

// GetByUserID lists the user's plans, newest first, each annotated with the
// count of its junction rows.
func (r *pgWorkoutPlanRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error) {
	rows, err := r.db.Query(ctx,
		`SELECT wp.id, wp.user_id, wp.name, wp.description, wp.created_at, wp.updated_at,
		        COUNT(we.id) AS exercise_count
		 FROM workout_plans wp
		 LEFT JOIN workout_exercises we ON wp.id = we.workout_plan_id
		 WHERE wp.user_id = $1
		 GROUP BY wp.id
		 ORDER BY wp.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query workout plans: %w", err)
	}
	defer rows.Close()

	plans := []domain.WorkoutPlan{}
	for rows.Next() {
		var plan domain.WorkoutPlan
		var description *string
		if err := rows.Scan(
			&plan.ID, &plan.UserID, &plan.Name, &description,
			&plan.CreatedAt, &plan.UpdatedAt, &plan.ExerciseCount,
		); err != nil {
			return nil, fmt.Errorf("scan workout plan: %w", err)
		}
		if description != nil {
			plan.Description = *description
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

// BelongsToUser reports whether the plan exists and is owned by the user.
// Used by the session tracker to validate plan references on workout create.
func (r *pgWorkoutPlanRepository) BelongsToUser(ctx context.Context, planID, userID int64) (bool, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`SELECT id FROM workout_plans WHERE id = $1 AND user_id = $2`,
		planID, userID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check plan ownership: %w", err)
	}
	return true, nil
}

// Delete removes a plan. Junction rows go with it via ON DELETE CASCADE and
// workouts referencing the plan keep running with a nulled reference.
func (r *pgWorkoutPlanRepository) Delete(ctx context.Context, planID, userID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM workout_plans WHERE id = $1 AND user_id = $2`,
		planID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete workout plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgWorkoutPlanRepository) scanPlan(ctx context.Context, planID, userID int64) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	var description *string
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, description, created_at, updated_at
		 FROM workout_plans WHERE id = $1 AND user_id = $2`,
		planID, userID,
	).Scan(&plan.ID, &plan.UserID, &plan.Name, &description, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan workout plan: %w", err)
	}
	if description != nil {
		plan.Description = *description
	}
	return &plan, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
