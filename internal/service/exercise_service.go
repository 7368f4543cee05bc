package service

import (
	"fmt"
	"strings"

	"github.com/liftlog/internal/db"
	"gorm.io/gorm"
)

// ExerciseService 负责单个动作的创建、查询与批量删除
type ExerciseService struct {
	w writer
}

// ExerciseInput 定义单独创建动作时的字段；Order 按调用方提供的值保存
type ExerciseInput struct {
	WorkoutID uint
	Name      string
	Sets      int
	Reps      int
	Order     int
}

// Create 新建动作。不校验 WorkoutID 是否存在。
func (s *ExerciseService) Create(input ExerciseInput) (*db.Exercise, error) {
	if err := validateExerciseShape(input.Name, input.Sets, input.Reps); err != nil {
		return nil, err
	}
	if input.Order < 0 {
		return nil, invalidField("order", "must not be negative")
	}

	var exercise db.Exercise
	err := s.w.transact(func(tx *gorm.DB) error {
		id, err := db.NextID(tx)
		if err != nil {
			return err
		}
		exercise = db.Exercise{
			ID:        id,
			WorkoutID: input.WorkoutID,
			Name:      strings.TrimSpace(input.Name),
			Sets:      input.Sets,
			Reps:      input.Reps,
			Order:     input.Order,
		}
		return tx.Create(&exercise).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	return &exercise, nil
}

// ListForWorkout 返回训练下的动作，按 Order 升序，Order 相同时按插入顺序
func (s *ExerciseService) ListForWorkout(workoutID uint) ([]db.Exercise, error) {
	exercises := make([]db.Exercise, 0)
	if err := s.w.db.Where("workout_id = ?", workoutID).
		Order("sort_order ASC, id ASC").
		Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// DeleteForWorkout 删除训练下的全部动作，重复调用无副作用
func (s *ExerciseService) DeleteForWorkout(workoutID uint) error {
	err := s.w.transact(func(tx *gorm.DB) error {
		return tx.Where("workout_id = ?", workoutID).Delete(&db.Exercise{}).Error
	})
	if err != nil {
		return fmt.Errorf("delete exercises: %w", err)
	}
	return nil
}

func validateExerciseShape(name string, sets, reps int) error {
	if strings.TrimSpace(name) == "" {
		return invalidField("name", "is required")
	}
	if sets <= 0 {
		return invalidField("sets", "must be a positive integer")
	}
	if reps <= 0 {
		return invalidField("reps", "must be a positive integer")
	}
	return nil
}
