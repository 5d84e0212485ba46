package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"workout-tracker/internal/config"
	"workout-tracker/internal/repository/postgres"
)

type seedExercise struct {
	Name        string
	Description string
	Category    string
	MuscleGroup string
}

var catalog = []seedExercise{
	// Cardio
	{"Running", "Cardiovascular exercise that improves endurance and burns calories", "cardio", "legs"},
	{"Cycling", "Low-impact cardio exercise that strengthens legs and improves cardiovascular health", "cardio", "legs"},
	{"Swimming", "Full-body cardio workout that is easy on the joints", "cardio", "full_body"},
	{"Jump Rope", "High-intensity cardio exercise that improves coordination and endurance", "cardio", "legs"},

	// Chest
	{"Push-ups", "Bodyweight exercise that targets chest, shoulders, and triceps", "strength", "chest"},
	{"Bench Press", "Compound exercise that primarily targets the chest muscles", "strength", "chest"},
	{"Dumbbell Flys", "Isolation exercise that targets the chest muscles", "strength", "chest"},
	{"Incline Press", "Upper chest focused pressing movement", "strength", "chest"},

	// Back
	{"Pull-ups", "Bodyweight exercise that targets back and biceps", "strength", "back"},
	{"Deadlift", "Compound exercise that targets the entire posterior chain", "strength", "back"},
	{"Bent-over Rows", "Compound exercise that targets the middle back", "strength", "back"},
	{"Lat Pulldowns", "Machine exercise that targets the latissimus dorsi", "strength", "back"},

	// Legs
	{"Squats", "Compound exercise that targets the entire lower body", "strength", "legs"},
	{"Lunges", "Unilateral exercise that targets legs and improves balance", "strength", "legs"},
	{"Leg Press", "Machine exercise that targets the quadriceps", "strength", "legs"},
	{"Romanian Deadlift", "Hip hinge exercise that targets hamstrings and glutes", "strength", "legs"},

	// Shoulders
	{"Overhead Press", "Compound exercise that targets the shoulders", "strength", "shoulders"},
	{"Lateral Raises", "Isolation exercise that targets the lateral deltoids", "strength", "shoulders"},
	{"Front Raises", "Isolation exercise that targets the anterior deltoids", "strength", "shoulders"},

	// Arms
	{"Bicep Curls", "Isolation exercise that targets the biceps", "strength", "arms"},
	{"Tricep Dips", "Bodyweight exercise that targets the triceps", "strength", "arms"},
	{"Hammer Curls", "Variation of bicep curls that also targets forearms", "strength", "arms"},

	// Core
	{"Plank", "Isometric exercise that targets the core muscles", "strength", "core"},
	{"Crunches", "Isolation exercise that targets the abdominal muscles", "strength", "core"},
	{"Russian Twists", "Rotational exercise that targets the obliques", "strength", "core"},
	{"Leg Raises", "Exercise that targets the lower abdominal muscles", "strength", "core"},

	// Flexibility
	{"Stretching", "General stretching to improve flexibility and range of motion", "flexibility", "full_body"},
	{"Yoga", "Mind-body practice that improves flexibility, strength, and balance", "flexibility", "full_body"},
	{"Foam Rolling", "Self-myofascial release technique to improve muscle recovery", "flexibility", "full_body"},
}

// Seeds the exercise catalog. The table is wiped first, so re-running
// the command resets the catalog to exactly this list.
func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.Info("seeding exercise catalog ...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		log.Fatalf("could not connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatalf("could not run migrations: %v", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("could not begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM exercises"); err != nil {
		log.Fatalf("could not clear exercises: %v", err)
	}

	for _, e := range catalog {
		_, err := tx.Exec(ctx,
			"INSERT INTO exercises (name, description, category, muscle_group) VALUES ($1, $2, $3, $4)",
			e.Name, e.Description, e.Category, e.MuscleGroup,
		)
		if err != nil {
			log.Fatalf("could not insert exercise %q: %v", e.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("could not commit: %v", err)
	}

	log.Infof("seeded %d exercises", len(catalog))
}
