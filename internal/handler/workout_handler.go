package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/liftlog/internal/service"
)

type exerciseDraftPayload struct {
	Name string `json:"name" binding:"required"`
	Sets int    `json:"sets" binding:"required,min=1"`
	Reps int    `json:"reps" binding:"required,min=1"`
	// Order 在整体创建/编辑时被忽略，按提交顺序重新编号
	Order *int `json:"order"`
}

type createWorkoutPayload struct {
	Name      string                 `json:"name" binding:"required"`
	Exercises []exerciseDraftPayload `json:"exercises" binding:"omitempty,dive"`
}

type renameWorkoutPayload struct {
	Name string `json:"name" binding:"required"`
}

type replaceWorkoutPayload struct {
	Name      string                 `json:"name" binding:"required"`
	Exercises []exerciseDraftPayload `json:"exercises" binding:"required,dive"`
}

func toDrafts(items []exerciseDraftPayload) []service.ExerciseDraft {
	drafts := make([]service.ExerciseDraft, 0, len(items))
	for _, item := range items {
		drafts = append(drafts, service.ExerciseDraft{Name: item.Name, Sets: item.Sets, Reps: item.Reps})
	}
	return drafts
}

// ListWorkouts 返回全部训练
func (a *API) ListWorkouts(c *gin.Context) {
	workouts, err := a.store.Workouts.List()
	if err != nil {
		a.handleServiceError(c, err, "failed to list workouts")
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout 返回单个训练
func (a *API) GetWorkout(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	workout, err := a.store.Workouts.Get(id)
	if err != nil {
		a.handleServiceError(c, err, "failed to load workout")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// CreateWorkout 创建训练；请求体带 exercises 时在同一事务里创建动作
func (a *API) CreateWorkout(c *gin.Context) {
	var payload createWorkoutPayload
	if !bindJSON(c, &payload, "invalid workout payload") {
		return
	}

	workout, err := a.store.Workouts.CreateWithExercises(payload.Name, toDrafts(payload.Exercises))
	if err != nil {
		a.handleServiceError(c, err, "failed to create workout")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// RenameWorkout 仅修改训练名称
func (a *API) RenameWorkout(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	var payload renameWorkoutPayload
	if !bindJSON(c, &payload, "invalid workout payload") {
		return
	}

	workout, err := a.store.Workouts.Update(id, payload.Name)
	if err != nil {
		a.handleServiceError(c, err, "failed to update workout")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// ReplaceWorkout 编辑训练：改名并整体替换动作列表
func (a *API) ReplaceWorkout(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	var payload replaceWorkoutPayload
	if !bindJSON(c, &payload, "invalid workout payload") {
		return
	}

	workout, err := a.store.Workouts.ReplaceExercises(id, payload.Name, toDrafts(payload.Exercises))
	if err != nil {
		a.handleServiceError(c, err, "failed to update workout")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout 删除训练及其动作，重复删除同样返回 204
func (a *API) DeleteWorkout(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	if err := a.store.Workouts.Delete(id); err != nil {
		a.handleServiceError(c, err, "failed to delete workout")
		return
	}
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}
