package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// Connect builds a pgx connection pool from the given URL and verifies it
// with a ping. The pool is the single storage handle injected into every
// repository; no package-level state is kept.
func Connect(ctx context.Context, databaseURL string, maxConns int32) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	if maxConns > 0 {
		poolConfig.MaxConns = maxConns
	}

	connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// migrations holds the schema DDL, executed in order on startup.
// Referential actions carry part of the lifecycle contract:
// plan -> workout_exercises and workout -> workout_logs cascade on delete,
// while a deleted plan only nulls the back-reference on its workouts.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(50) UNIQUE NOT NULL,
		email VARCHAR(100) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS exercises (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		category VARCHAR(50) NOT NULL,
		muscle_group VARCHAR(50),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS workout_plans (
		id SERIAL PRIMARY KEY,
		user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS workout_exercises (
		id SERIAL PRIMARY KEY,
		workout_plan_id INTEGER REFERENCES workout_plans(id) ON DELETE CASCADE,
		exercise_id INTEGER REFERENCES exercises(id) ON DELETE CASCADE,
		sets INTEGER NOT NULL DEFAULT 3,
		reps INTEGER NOT NULL DEFAULT 10,
		weight DECIMAL(5,2),
		rest_time INTEGER DEFAULT 60,
		order_index INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS workouts (
		id SERIAL PRIMARY KEY,
		user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
		workout_plan_id INTEGER REFERENCES workout_plans(id) ON DELETE SET NULL,
		name VARCHAR(100) NOT NULL,
		scheduled_date TIMESTAMP,
		completed_date TIMESTAMP,
		status VARCHAR(20) DEFAULT 'scheduled',
		notes TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS workout_logs (
		id SERIAL PRIMARY KEY,
		workout_id INTEGER REFERENCES workouts(id) ON DELETE CASCADE,
		exercise_id INTEGER REFERENCES exercises(id) ON DELETE CASCADE,
		sets INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		weight DECIMAL(5,2),
		rest_time INTEGER,
		notes TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
	`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_plans_user_id ON workout_plans(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_workouts_user_id ON workouts(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_workouts_scheduled_date ON workouts(scheduled_date)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_logs_workout_id ON workout_logs(workout_id)`,
	`CREATE INDEX IF NOT EXISTS idx_exercises_category ON exercises(category)`,
}

// Migrate creates the schema if it does not exist yet. Call during startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}
	return nil
}
