package main

import (
	"fmt"
	"time"

	"github.com/liftlog/internal/db"
	"github.com/liftlog/internal/service"
	"gorm.io/gorm"
)

// seed 写入示例训练计划，并为每个计划生成每周一次、重量递增的历史记录。
// 已有训练计划时不做任何修改，返回 false。
func seed(gdb *gorm.DB, weeks int, now time.Time) (bool, error) {
	var count int64
	if err := gdb.Model(&db.Workout{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	var at time.Time
	store := service.NewStore(gdb, service.WithClock(func() time.Time { return at }))

	start := now.AddDate(0, 0, -7*weeks)
	for i, item := range seedWorkouts {
		workout, err := store.Workouts.CreateWithExercises(item.name, item.exercises)
		if err != nil {
			return false, fmt.Errorf("create workout %s: %w", item.name, err)
		}

		exercises, err := store.Exercises.ListForWorkout(workout.ID)
		if err != nil {
			return false, err
		}

		for week := 0; week < weeks; week++ {
			// 各计划错开一天，避免同一时间完成
			session := start.AddDate(0, 0, week*7+i).Truncate(time.Minute)
			for j, exercise := range exercises {
				at = session.Add(time.Duration(j) * 5 * time.Minute)
				weight := item.startWeights[j] + 2.5*float64(week)
				if _, err := store.History.Add(service.HistoryInput{
					WorkoutID:  workout.ID,
					ExerciseID: exercise.ID,
					Weight:     weight,
					Unit:       db.UnitKilogram,
				}); err != nil {
					return false, fmt.Errorf("record history: %w", err)
				}
			}
		}
	}

	return true, nil
}
