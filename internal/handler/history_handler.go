package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/liftlog/internal/service"
)

// completedAt 即使出现在请求体中也会被忽略
type historyPayload struct {
	WorkoutID  uint     `json:"workoutId" binding:"required"`
	ExerciseID uint     `json:"exerciseId" binding:"required"`
	Weight     *float64 `json:"weight" binding:"required"`
	Unit       string   `json:"unit" binding:"required,oneof=kg lb"`
}

// RecordWeight 记录一次动作使用的重量，完成时间由服务端决定
func (a *API) RecordWeight(c *gin.Context) {
	var payload historyPayload
	if !bindJSON(c, &payload, "invalid history payload") {
		return
	}

	entry, err := a.store.History.Add(service.HistoryInput{
		WorkoutID:  payload.WorkoutID,
		ExerciseID: payload.ExerciseID,
		Weight:     *payload.Weight,
		Unit:       payload.Unit,
	})
	if err != nil {
		a.handleServiceError(c, err, "failed to record weight")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ListExerciseHistory 返回动作的历史重量，最近的在前
func (a *API) ListExerciseHistory(c *gin.Context) {
	exerciseID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid exercise id")
		return
	}

	entries, err := a.store.History.ListForExercise(exerciseID)
	if err != nil {
		a.handleServiceError(c, err, "failed to load history")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// RecentHistory 返回每个训练最近一次完成的记录，最多五条
func (a *API) RecentHistory(c *gin.Context) {
	entries, err := a.store.History.Recent()
	if err != nil {
		a.handleServiceError(c, err, "failed to load recent history")
		return
	}
	c.JSON(http.StatusOK, entries)
}
