package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/liftlog/internal/db"
	"gorm.io/gorm"
)

// WorkoutService 负责 Workout 的增删改查，以及创建/编辑时动作顺序的维护
type WorkoutService struct {
	w writer
}

// ExerciseDraft 是随训练一起提交的动作，顺序由提交位置决定
type ExerciseDraft struct {
	Name string
	Sets int
	Reps int
}

// List 按插入顺序返回全部训练
func (s *WorkoutService) List() ([]db.Workout, error) {
	workouts := make([]db.Workout, 0)
	if err := s.w.db.Order("id ASC").Find(&workouts).Error; err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

// Get 根据 ID 获取训练
func (s *WorkoutService) Get(id uint) (*db.Workout, error) {
	var workout db.Workout
	if err := s.w.db.First(&workout, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return &workout, nil
}

// Create 新建训练
func (s *WorkoutService) Create(name string) (*db.Workout, error) {
	return s.CreateWithExercises(name, nil)
}

// CreateWithExercises 在同一事务里创建训练及其动作。
// 动作的 Order 一律按提交位置重新编号为 0,1,2,…
func (s *WorkoutService) CreateWithExercises(name string, drafts []ExerciseDraft) (*db.Workout, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidField("name", "is required")
	}
	if err := validateDrafts(drafts); err != nil {
		return nil, err
	}

	var workout db.Workout
	err := s.w.transact(func(tx *gorm.DB) error {
		id, err := db.NextID(tx)
		if err != nil {
			return err
		}
		workout = db.Workout{ID: id, Name: name}
		if err := tx.Create(&workout).Error; err != nil {
			return err
		}
		return insertDrafts(tx, workout.ID, drafts)
	})
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	return &workout, nil
}

// Update 修改训练名称
func (s *WorkoutService) Update(id uint, name string) (*db.Workout, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidField("name", "is required")
	}

	var workout db.Workout
	err := s.w.transact(func(tx *gorm.DB) error {
		return renameWorkout(tx, id, name, &workout)
	})
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update workout: %w", err)
	}
	return &workout, nil
}

// ReplaceExercises 是编辑训练的完整替换：改名、删除原有动作、按提交顺序重建。
// 三步在一个事务内完成，原先的 Order 不会保留。
func (s *WorkoutService) ReplaceExercises(id uint, name string, drafts []ExerciseDraft) (*db.Workout, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidField("name", "is required")
	}
	if err := validateDrafts(drafts); err != nil {
		return nil, err
	}

	var workout db.Workout
	err := s.w.transact(func(tx *gorm.DB) error {
		if err := renameWorkout(tx, id, name, &workout); err != nil {
			return err
		}
		if err := tx.Where("workout_id = ?", id).Delete(&db.Exercise{}).Error; err != nil {
			return err
		}
		return insertDrafts(tx, id, drafts)
	})
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("replace exercises: %w", err)
	}
	return &workout, nil
}

// Delete 删除训练并级联删除其动作；历史记录保留。
// 不存在的 ID 视为成功。
func (s *WorkoutService) Delete(id uint) error {
	err := s.w.transact(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", id).Delete(&db.Exercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db.Workout{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

func renameWorkout(tx *gorm.DB, id uint, name string, out *db.Workout) error {
	if err := tx.First(out, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	out.Name = name
	return tx.Save(out).Error
}

func insertDrafts(tx *gorm.DB, workoutID uint, drafts []ExerciseDraft) error {
	for idx, draft := range drafts {
		id, err := db.NextID(tx)
		if err != nil {
			return err
		}
		exercise := db.Exercise{
			ID:        id,
			WorkoutID: workoutID,
			Name:      strings.TrimSpace(draft.Name),
			Sets:      draft.Sets,
			Reps:      draft.Reps,
			Order:     idx,
		}
		if err := tx.Create(&exercise).Error; err != nil {
			return err
		}
	}
	return nil
}

func validateDrafts(drafts []ExerciseDraft) error {
	for idx, draft := range drafts {
		prefix := fmt.Sprintf("exercises[%d].", idx)
		if err := validateExerciseShape(draft.Name, draft.Sets, draft.Reps); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				return invalidField(prefix+verr.Field, verr.Message)
			}
			return err
		}
	}
	return nil
}
