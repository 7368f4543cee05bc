package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/liftlog/internal/service"
)

type exercisePayload struct {
	Name  string `json:"name" binding:"required"`
	Sets  int    `json:"sets" binding:"required,min=1"`
	Reps  int    `json:"reps" binding:"required,min=1"`
	Order *int   `json:"order" binding:"required,min=0"`
}

// ListExercises 返回训练下按顺序排列的动作
func (a *API) ListExercises(c *gin.Context) {
	workoutID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	exercises, err := a.store.Exercises.ListForWorkout(workoutID)
	if err != nil {
		a.handleServiceError(c, err, "failed to list exercises")
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// CreateExercise 为训练添加单个动作，Order 使用请求中的值
func (a *API) CreateExercise(c *gin.Context) {
	workoutID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	var payload exercisePayload
	if !bindJSON(c, &payload, "invalid exercise payload") {
		return
	}

	exercise, err := a.store.Exercises.Create(service.ExerciseInput{
		WorkoutID: workoutID,
		Name:      payload.Name,
		Sets:      payload.Sets,
		Reps:      payload.Reps,
		Order:     *payload.Order,
	})
	if err != nil {
		a.handleServiceError(c, err, "failed to create exercise")
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// DeleteExercises 批量删除训练下的全部动作
func (a *API) DeleteExercises(c *gin.Context) {
	workoutID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	if err := a.store.Exercises.DeleteForWorkout(workoutID); err != nil {
		a.handleServiceError(c, err, "failed to delete exercises")
		return
	}
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}
