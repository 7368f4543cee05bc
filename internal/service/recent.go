package service

import (
	"cmp"
	"slices"
	"time"

	"github.com/liftlog/internal/db"
)

const (
	// RecentLimit 最近训练列表的最大条数
	RecentLimit = 5
	// UnknownWorkoutName 训练已被删除时展示的名称
	UnknownWorkoutName = "Unknown Workout"
)

// RecentEntry 是最近训练列表中的一项，只包含名称和完成时间
type RecentEntry struct {
	ID          uint      `json:"id" yaml:"id"`
	WorkoutID   uint      `json:"workoutId" yaml:"workoutId"`
	WorkoutName string    `json:"workoutName" yaml:"workoutName"`
	CompletedAt time.Time `json:"completedAt" yaml:"completedAt"`
}

// LatestPerWorkout 一次遍历按 WorkoutID 分组，取每组最新的一条，
// 再按完成时间倒序排列并截取前 limit 条。时间相同时 ID 大者优先。
func LatestPerWorkout(rows []db.WorkoutHistory, limit int) []db.WorkoutHistory {
	best := make(map[uint]db.WorkoutHistory, len(rows))
	for _, row := range rows {
		current, ok := best[row.WorkoutID]
		if !ok || compareRecency(row, current) > 0 {
			best[row.WorkoutID] = row
		}
	}

	latest := make([]db.WorkoutHistory, 0, len(best))
	for _, row := range best {
		latest = append(latest, row)
	}

	slices.SortFunc(latest, func(a, b db.WorkoutHistory) int {
		return compareRecency(b, a)
	})

	if limit >= 0 && len(latest) > limit {
		latest = latest[:limit]
	}
	return latest
}

func compareRecency(a, b db.WorkoutHistory) int {
	if diff := a.CompletedAt.Compare(b.CompletedAt); diff != 0 {
		return diff
	}
	return cmp.Compare(a.ID, b.ID)
}

func buildRecentEntries(rows []db.WorkoutHistory, names map[uint]string) []RecentEntry {
	entries := make([]RecentEntry, 0, len(rows))
	for _, row := range rows {
		name, ok := names[row.WorkoutID]
		if !ok {
			name = UnknownWorkoutName
		}
		entries = append(entries, RecentEntry{
			ID:          row.ID,
			WorkoutID:   row.WorkoutID,
			WorkoutName: name,
			CompletedAt: row.CompletedAt.UTC(),
		})
	}
	return entries
}
