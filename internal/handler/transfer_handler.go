package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxImportBytes = 16 << 20

// ExportData 下载完整数据快照，?format=yaml 时输出 YAML
func (a *API) ExportData(c *gin.Context) {
	if strings.EqualFold(c.Query("format"), "yaml") {
		data, err := a.store.Transfer.ExportYAML()
		if err != nil {
			a.handleServiceError(c, err, "failed to export data")
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
		return
	}

	data, err := a.store.Transfer.Export()
	if err != nil {
		a.handleServiceError(c, err, "failed to export data")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// ImportData 用请求体中的快照整体替换现有数据
func (a *API) ImportData(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes))
	if err != nil {
		respondError(c, http.StatusBadRequest, "failed to read import document")
		return
	}

	summary, err := a.store.Transfer.Import(body)
	if err != nil {
		a.handleServiceError(c, err, "failed to import data")
		return
	}

	a.logger.Info("data imported",
		zap.Int("workouts", summary.Workouts),
		zap.Int("exercises", summary.Exercises),
		zap.Int("history", summary.History),
		zap.Uint("next_id", summary.NextID),
	)

	c.JSON(http.StatusOK, gin.H{
		"imported":  true,
		"workouts":  summary.Workouts,
		"exercises": summary.Exercises,
		"history":   summary.History,
	})
}
