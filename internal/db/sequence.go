package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntitySequence 是三类实体共用的序列名
const EntitySequence = "entity"

// IDSequence 保存下一个可分配的 ID
// workouts / exercises / workout_history 共用同一个命名空间
type IDSequence struct {
	Name string `gorm:"primaryKey;size:32"`
	Next uint   `gorm:"not null"`
}

// NextID 在给定事务中分配一个 ID，并把计数器加一。
// 必须在事务内调用；Open 将连接池限制为单连接，读取与递增之间不会插入其他写入。
func NextID(tx *gorm.DB) (uint, error) {
	var seq IDSequence
	err := tx.Where("name = ?", EntitySequence).First(&seq).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("load id sequence: %w", err)
		}
		seq = IDSequence{Name: EntitySequence, Next: 1}
		if err := tx.Create(&seq).Error; err != nil {
			return 0, fmt.Errorf("create id sequence: %w", err)
		}
	}

	id := seq.Next
	if err := tx.Model(&IDSequence{}).
		Where("name = ?", EntitySequence).
		Update("next", id+1).Error; err != nil {
		return 0, fmt.Errorf("advance id sequence: %w", err)
	}
	return id, nil
}

// ResetSequence 将计数器重算为三张表中最大 ID + 1（全空时为 1）
func ResetSequence(tx *gorm.DB) (uint, error) {
	var maxID uint
	for _, model := range []any{&Workout{}, &Exercise{}, &WorkoutHistory{}} {
		var current uint
		if err := tx.Model(model).Select("COALESCE(MAX(id), 0)").Scan(&current).Error; err != nil {
			return 0, fmt.Errorf("scan max id: %w", err)
		}
		if current > maxID {
			maxID = current
		}
	}

	next := maxID + 1
	seq := IDSequence{Name: EntitySequence, Next: next}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"next"}),
	}).Create(&seq).Error; err != nil {
		return 0, fmt.Errorf("reset id sequence: %w", err)
	}
	return next, nil
}
