package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/liftlog/internal/db"
	"github.com/liftlog/internal/service"
)

func TestCreateExerciseHandlerKeepsOrder(t *testing.T) {
	api, store := setupTestAPI(t)
	workout, _ := store.Workouts.Create("Arms")

	for _, item := range []map[string]any{
		{"name": "Curl", "sets": 3, "reps": 12, "order": 4},
		{"name": "Pushdown", "sets": 3, "reps": 12, "order": 1},
	} {
		c, w := newJSONContext(http.MethodPost, "/api/workouts/x/exercises", item, idParam(workout.ID))
		api.CreateExercise(c)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
	}

	c, w := newJSONContext(http.MethodGet, "/api/workouts/x/exercises", nil, idParam(workout.ID))
	api.ListExercises(c)

	var exercises []db.Exercise
	if err := json.Unmarshal(w.Body.Bytes(), &exercises); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(exercises) != 2 || exercises[0].Name != "Pushdown" || exercises[0].Order != 1 {
		t.Fatalf("unexpected order: %+v", exercises)
	}
	if !strings.Contains(w.Body.String(), `"workoutId"`) {
		t.Fatalf("expected camelCase keys, got %s", w.Body.String())
	}
}

func TestCreateExerciseHandlerRequiresOrder(t *testing.T) {
	api, _ := setupTestAPI(t)

	c, w := newJSONContext(http.MethodPost, "/api/workouts/1/exercises", map[string]any{"name": "Curl", "sets": 3, "reps": 12}, idParam(1))
	api.CreateExercise(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"field":"order"`) {
		t.Fatalf("expected order field error, got %s", w.Body.String())
	}
}

func TestDeleteExercisesHandler(t *testing.T) {
	api, store := setupTestAPI(t)
	workout, _ := store.Workouts.CreateWithExercises("Core", []service.ExerciseDraft{{Name: "Plank", Sets: 3, Reps: 1}})

	c, w := newJSONContext(http.MethodDelete, "/api/workouts/x/exercises", nil, idParam(workout.ID))
	api.DeleteExercises(c)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}

	left, _ := store.Exercises.ListForWorkout(workout.ID)
	if len(left) != 0 {
		t.Fatalf("expected no exercises, got %d", len(left))
	}
}

func TestRecordWeightIgnoresClientTimestamp(t *testing.T) {
	api, store := setupTestAPI(t)
	workout, _ := store.Workouts.CreateWithExercises("Push", []service.ExerciseDraft{{Name: "Bench", Sets: 5, Reps: 5}})
	exercises, _ := store.Exercises.ListForWorkout(workout.ID)

	payload := map[string]any{
		"workoutId":   workout.ID,
		"exerciseId":  exercises[0].ID,
		"weight":      102.5,
		"unit":        "kg",
		"completedAt": "1999-01-01T00:00:00Z",
	}
	c, w := newJSONContext(http.MethodPost, "/api/history", payload)
	api.RecordWeight(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var entry db.WorkoutHistory
	_ = json.Unmarshal(w.Body.Bytes(), &entry)
	if entry.CompletedAt.Year() != 2024 {
		t.Fatalf("expected server timestamp, got %s", entry.CompletedAt)
	}
	if entry.Weight != 102.5 || entry.Unit != "kg" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestRecordWeightValidation(t *testing.T) {
	api, _ := setupTestAPI(t)

	tests := []struct {
		name    string
		payload map[string]any
		field   string
	}{
		{name: "missing weight", payload: map[string]any{"workoutId": 1, "exerciseId": 2, "unit": "kg"}, field: "weight"},
		{name: "bad unit", payload: map[string]any{"workoutId": 1, "exerciseId": 2, "weight": 10, "unit": "stone"}, field: "unit"},
		{name: "missing exercise", payload: map[string]any{"workoutId": 1, "weight": 10, "unit": "lb"}, field: "exerciseId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newJSONContext(http.MethodPost, "/api/history", tt.payload)
			api.RecordWeight(c)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), `"field":"`+tt.field+`"`) {
				t.Fatalf("expected field %s in %s", tt.field, w.Body.String())
			}
		})
	}
}

func TestExerciseHistoryAndRecentHandlers(t *testing.T) {
	api, store := setupTestAPI(t)
	workout, _ := store.Workouts.CreateWithExercises("Push", []service.ExerciseDraft{{Name: "Bench", Sets: 5, Reps: 5}})
	exercises, _ := store.Exercises.ListForWorkout(workout.ID)

	for _, weight := range []float64{100, 105} {
		if _, err := store.History.Add(service.HistoryInput{WorkoutID: workout.ID, ExerciseID: exercises[0].ID, Weight: weight, Unit: "kg"}); err != nil {
			t.Fatalf("failed to add history: %v", err)
		}
	}

	c, w := newJSONContext(http.MethodGet, "/api/exercises/x/history", nil, idParam(exercises[0].ID))
	api.ListExerciseHistory(c)

	var history []db.WorkoutHistory
	_ = json.Unmarshal(w.Body.Bytes(), &history)
	if len(history) != 2 || history[0].Weight != 105 || history[1].Weight != 100 {
		t.Fatalf("unexpected history: %+v", history)
	}

	c, w = newJSONContext(http.MethodGet, "/api/history/recent", nil)
	api.RecentHistory(c)

	var recent []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &recent)
	if len(recent) != 1 {
		t.Fatalf("expected 1 recent entry, got %d", len(recent))
	}
	if recent[0]["workoutName"] != "Push" {
		t.Fatalf("unexpected workout name: %v", recent[0]["workoutName"])
	}
	if _, ok := recent[0]["weight"]; ok {
		t.Fatal("recent entries should not expose weight")
	}
}
