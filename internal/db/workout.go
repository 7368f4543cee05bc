package db

import "time"

// 单位取值
const (
	UnitKilogram = "kg"
	UnitPound    = "lb"
)

// Workout 定义训练模板
// ID 由共享序列分配（见 IDSequence），因此关闭自增
type Workout struct {
	ID   uint   `gorm:"primaryKey;autoIncrement:false" json:"id" yaml:"id"`
	Name string `gorm:"not null" json:"name" yaml:"name"`
}

// Exercise 属于某个 Workout 的单个动作
// Order 只要求相对有序，不要求连续；并列时按 ID（插入顺序）排序
// WorkoutID 不做外键约束，允许孤立动作
type Exercise struct {
	ID        uint   `gorm:"primaryKey;autoIncrement:false" json:"id" yaml:"id"`
	WorkoutID uint   `gorm:"index;not null" json:"workoutId" yaml:"workoutId"`
	Name      string `gorm:"not null" json:"name" yaml:"name"`
	Sets      int    `gorm:"not null" json:"sets" yaml:"sets"`
	Reps      int    `gorm:"not null" json:"reps" yaml:"reps"`
	Order     int    `gorm:"column:sort_order;not null" json:"order" yaml:"order"`
}

// WorkoutHistory 记录某次训练中某个动作使用的重量
// 创建后不可修改；删除 Workout 时保留，用于追溯
type WorkoutHistory struct {
	ID          uint      `gorm:"primaryKey;autoIncrement:false" json:"id" yaml:"id"`
	WorkoutID   uint      `gorm:"index;not null" json:"workoutId" yaml:"workoutId"`
	ExerciseID  uint      `gorm:"index;not null" json:"exerciseId" yaml:"exerciseId"`
	Weight      float64   `gorm:"not null" json:"weight" yaml:"weight"`
	Unit        string    `gorm:"size:8;not null" json:"unit" yaml:"unit"`
	CompletedAt time.Time `gorm:"index;not null" json:"completedAt" yaml:"completedAt"`
}

// TableName 保持与导出文档中的 history 集合对应
func (WorkoutHistory) TableName() string {
	return "workout_history"
}
