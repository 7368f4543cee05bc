package main

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/liftlog/internal/db"
	"github.com/liftlog/internal/service"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared", logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

func TestSeedCreatesWorkoutsAndProgression(t *testing.T) {
	gdb := setupSeedTestDB(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	created, err := seed(gdb, 4, now)
	if err != nil {
		t.Fatalf("seed returned error: %v", err)
	}
	if !created {
		t.Fatal("expected seed to create data")
	}

	store := service.NewStore(gdb)
	workouts, err := store.Workouts.List()
	if err != nil {
		t.Fatalf("failed to list workouts: %v", err)
	}
	if len(workouts) != len(seedWorkouts) {
		t.Fatalf("expected %d workouts, got %d", len(seedWorkouts), len(workouts))
	}

	exercises, _ := store.Exercises.ListForWorkout(workouts[0].ID)
	history, err := store.History.ListForExercise(exercises[0].ID)
	if err != nil {
		t.Fatalf("failed to list history: %v", err)
	}
	if len(history) != 4 {
		t.Fatalf("expected 4 sessions, got %d", len(history))
	}
	if history[0].Weight != history[len(history)-1].Weight+7.5 {
		t.Fatalf("expected weight to progress, got newest %.1f oldest %.1f", history[0].Weight, history[len(history)-1].Weight)
	}

	recent, err := store.History.Recent()
	if err != nil {
		t.Fatalf("failed to load recent: %v", err)
	}
	if len(recent) != len(seedWorkouts) {
		t.Fatalf("expected one recent entry per workout, got %d", len(recent))
	}
	if recent[0].WorkoutName != "Leg Day" {
		t.Fatalf("expected most recent workout to be Leg Day, got %s", recent[0].WorkoutName)
	}
}

func TestSeedSkipsExistingData(t *testing.T) {
	gdb := setupSeedTestDB(t)
	store := service.NewStore(gdb)
	if _, err := store.Workouts.Create("Mine"); err != nil {
		t.Fatalf("failed to create workout: %v", err)
	}

	created, err := seed(gdb, 2, time.Now().UTC())
	if err != nil {
		t.Fatalf("seed returned error: %v", err)
	}
	if created {
		t.Fatal("expected seed to skip existing data")
	}

	workouts, _ := store.Workouts.List()
	if len(workouts) != 1 {
		t.Fatalf("expected existing data untouched, got %d workouts", len(workouts))
	}
}
