package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// pgWorkoutRepository implements repository.WorkoutRepository.
type pgWorkoutRepository struct {
	db *pgxpool.Pool
}

// NewWorkoutRepository creates a new workout session repository.
func NewWorkoutRepository(db *pgxpool.Pool) repository.WorkoutRepository {
	return &pgWorkoutRepository{db: db}
}

// Create inserts a new workout session and returns the generated id.
func (r *pgWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (int64, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO workouts (user_id, workout_plan_id, name, scheduled_date, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, status, created_at, updated_at`,
		workout.UserID, workout.PlanID, workout.Name,
		workout.ScheduledDate, nullIfEmpty(workout.Notes),
	)
	if err := row.Scan(&workout.ID, &workout.Status, &workout.CreatedAt, &workout.UpdatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return 0, repository.ErrInvalidRef
		}
		return 0, fmt.Errorf("insert workout: %w", err)
	}
	return workout.ID, nil
}

// GetByID retrieves a workout scoped by owner, with its logs attached.
func (r *pgWorkoutRepository) GetByID(ctx context.Context, workoutID, userID int64) (*domain.Workout, error) {
	row := r.db.QueryRow(ctx,
		`SELECT w.id, w.user_id, w.workout_plan_id, w.name, w.scheduled_date,
		        w.completed_date, w.status, w.notes, w.created_at, w.updated_at,
		        wp.name AS plan_name
		 FROM workouts w
		 LEFT JOIN workout_plans wp ON w.workout_plan_id = wp.id
		 WHERE w.id = $1 AND w.user_id = $2`,
		workoutID, userID,
	)
	workout, err := scanWorkout(row)
	if err != nil {
		return nil, err
	}

	logs, err := r.GetLogs(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	workout.Logs = logs
	return workout, nil
}

// GetByUserID lists the user's workouts with an optional status filter and
// limit/offset paging, most recently scheduled first.
func (r *pgWorkoutRepository) GetByUserID(ctx context.Context, userID int64, filter repository.WorkoutFilter) ([]domain.Workout, error) {
	query := `SELECT w.id, w.user_id, w.workout_plan_id, w.name, w.scheduled_date,
	                 w.completed_date, w.status, w.notes, w.created_at, w.updated_at,
	                 wp.name AS plan_name
	          FROM workouts w
	          LEFT JOIN workout_plans wp ON w.workout_plan_id = wp.id
	          WHERE w.user_id = $1`
	args := []any{userID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND w.status = $%d", len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit, filter.Offset)
	query += fmt.Sprintf(
		" ORDER BY w.scheduled_date DESC, w.created_at DESC LIMIT $%d OFFSET $%d",
		len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	workouts := []domain.Workout{}
	for rows.Next() {
		workout, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *workout)
	}
	return workouts, rows.Err()
}

// Update applies a partial update with coalesce semantics: each column is
// replaced only when the corresponding field is non-nil, and updated_at is
// always refreshed. completedDate, when non-nil, stamps completed_date.
func (r *pgWorkoutRepository) Update(ctx context.Context, workoutID, userID int64, update domain.WorkoutUpdate, completedDate *time.Time) (*domain.Workout, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE workouts
		 SET name = COALESCE($1, name),
		     scheduled_date = COALESCE($2, scheduled_date),
		     status = COALESCE($3, status),
		     notes = COALESCE($4, notes),
		     completed_date = COALESCE($5, completed_date),
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6 AND user_id = $7
		 RETURNING id, user_id, workout_plan_id, name, scheduled_date,
		           completed_date, status, notes, created_at, updated_at,
		           (SELECT wp.name FROM workout_plans wp WHERE wp.id = workout_plan_id) AS plan_name`,
		update.Name, update.ScheduledDate, update.Status, update.Notes,
		completedDate, workoutID, userID,
	)
	return scanWorkout(row)
}

// Delete removes a workout; its log rows go with it via ON DELETE CASCADE.
func (r *pgWorkoutRepository) Delete(ctx context.Context, workoutID, userID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2`,
		workoutID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// BelongsToUser reports whether the workout exists and is owned by the user.
func (r *pgWorkoutRepository) BelongsToUser(ctx context.Context, workoutID, userID int64) (bool, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`SELECT id FROM workouts WHERE id = $1 AND user_id = $2`,
		workoutID, userID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check workout ownership: %w", err)
	}
	return true, nil
}

// AddLog appends a new log row. No dedup against existing logs for the same
// exercise; repeated calls produce repeated rows.
func (r *pgWorkoutRepository) AddLog(ctx context.Context, log *domain.WorkoutLog) (int64, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO workout_logs (workout_id, exercise_id, sets, reps, weight, rest_time, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		log.WorkoutID, log.ExerciseID, log.Sets, log.Reps,
		log.Weight, log.RestTime, nullIfEmpty(log.Notes),
	)
	if err := row.Scan(&log.ID, &log.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return 0, repository.ErrInvalidRef
		}
		return 0, fmt.Errorf("insert workout log: %w", err)
	}
	return log.ID, nil
}

// GetLogs returns a workout's log rows joined to the catalog, in insertion
// order.
func (r *pgWorkoutRepository) GetLogs(ctx context.Context, workoutID int64) ([]domain.WorkoutLog, error) {
	rows, err := r.db.Query(ctx,
		`SELECT wl.id, wl.workout_id, wl.exercise_id, wl.sets, wl.reps,
		        wl.weight, wl.rest_time, wl.notes, wl.created_at,
		        e.name, e.description, e.category, e.muscle_group
		 FROM workout_logs wl
		 JOIN exercises e ON wl.exercise_id = e.id
		 WHERE wl.workout_id = $1
		 ORDER BY wl.created_at`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("query workout logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.WorkoutLog{}
	for rows.Next() {
		log, err := scanWorkoutLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *log)
	}
	return logs, rows.Err()
}

// CompletedSince returns the user's completed workouts with completed_date
// at or after the cutoff (inclusive), each with its logs attached, ordered
// by completed_date descending.
func (r *pgWorkoutRepository) CompletedSince(ctx context.Context, userID int64, cutoff time.Time) ([]domain.Workout, error) {
	rows, err := r.db.Query(ctx,
		`SELECT w.id, w.user_id, w.workout_plan_id, w.name, w.scheduled_date,
		        w.completed_date, w.status, w.notes, w.created_at, w.updated_at,
		        NULL::VARCHAR AS plan_name
		 FROM workouts w
		 WHERE w.user_id = $1
		   AND w.status = 'completed'
		   AND w.completed_date >= $2
		 ORDER BY w.completed_date DESC`,
		userID, cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("query completed workouts: %w", err)
	}
	defer rows.Close()

	workouts := []domain.Workout{}
	for rows.Next() {
		workout, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range workouts {
		logs, err := r.GetLogs(ctx, workouts[i].ID)
		if err != nil {
			return nil, err
		}
		workouts[i].Logs = logs
	}
	return workouts, nil
}

func scanWorkout(row pgx.Row) (*domain.Workout, error) {
	var workout domain.Workout
	var notes *string
	err := row.Scan(
		&workout.ID, &workout.UserID, &workout.PlanID, &workout.Name,
		&workout.ScheduledDate, &workout.CompletedDate, &workout.Status,
		&notes, &workout.CreatedAt, &workout.UpdatedAt, &workout.PlanName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan workout: %w", err)
	}
	if notes != nil {
		workout.Notes = *notes
	}
	return &workout, nil
}

func scanWorkoutLog(row pgx.Row) (*domain.WorkoutLog, error) {
	var log domain.WorkoutLog
	var notes, description, muscleGroup *string
	err := row.Scan(
		&log.ID, &log.WorkoutID, &log.ExerciseID, &log.Sets, &log.Reps,
		&log.Weight, &log.RestTime, &notes, &log.CreatedAt,
		&log.ExerciseName, &description, &log.Category, &muscleGroup,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan workout log: %w", err)
	}
	if notes != nil {
		log.Notes = *notes
	}
	if description != nil {
		log.Description = *description
	}
	if muscleGroup != nil {
		log.MuscleGroup = *muscleGroup
	}
	return &log, nil
}
