package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/liftlog/internal/db"
	"gorm.io/gorm"
)

// HistoryService 记录训练执行时的重量，并提供按动作与最近训练的查询
type HistoryService struct {
	w     writer
	clock func() time.Time
}

// HistoryInput 定义记录重量时的输入；完成时间由服务端填写
type HistoryInput struct {
	WorkoutID  uint
	ExerciseID uint
	Weight     float64
	Unit       string
}

// Add 写入一条历史记录，CompletedAt 取服务端当前时间（UTC）
func (s *HistoryService) Add(input HistoryInput) (*db.WorkoutHistory, error) {
	unit := strings.ToLower(strings.TrimSpace(input.Unit))
	if unit != db.UnitKilogram && unit != db.UnitPound {
		return nil, invalidField("unit", "must be kg or lb")
	}
	if input.WorkoutID == 0 {
		return nil, invalidField("workoutId", "is required")
	}
	if input.ExerciseID == 0 {
		return nil, invalidField("exerciseId", "is required")
	}

	var entry db.WorkoutHistory
	err := s.w.transact(func(tx *gorm.DB) error {
		id, err := db.NextID(tx)
		if err != nil {
			return err
		}
		entry = db.WorkoutHistory{
			ID:          id,
			WorkoutID:   input.WorkoutID,
			ExerciseID:  input.ExerciseID,
			Weight:      input.Weight,
			Unit:        unit,
			CompletedAt: s.clock().UTC(),
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, fmt.Errorf("add history: %w", err)
	}
	return &entry, nil
}

// ListForExercise 返回动作的历史记录，最近的在前
func (s *HistoryService) ListForExercise(exerciseID uint) ([]db.WorkoutHistory, error) {
	entries := make([]db.WorkoutHistory, 0)
	if err := s.w.db.Where("exercise_id = ?", exerciseID).
		Order("completed_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list exercise history: %w", err)
	}
	for i := range entries {
		entries[i].CompletedAt = entries[i].CompletedAt.UTC()
	}
	return entries, nil
}

// Recent 返回每个训练最近一次完成的记录，按时间倒序，最多 RecentLimit 条
func (s *HistoryService) Recent() ([]RecentEntry, error) {
	var rows []db.WorkoutHistory
	if err := s.w.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	latest := LatestPerWorkout(rows, RecentLimit)
	if len(latest) == 0 {
		return []RecentEntry{}, nil
	}

	ids := make([]uint, 0, len(latest))
	for _, row := range latest {
		ids = append(ids, row.WorkoutID)
	}

	var workouts []db.Workout
	if err := s.w.db.Where("id IN ?", ids).Find(&workouts).Error; err != nil {
		return nil, fmt.Errorf("resolve workout names: %w", err)
	}
	names := make(map[uint]string, len(workouts))
	for _, workout := range workouts {
		names[workout.ID] = workout.Name
	}

	return buildRecentEntries(latest, names), nil
}
