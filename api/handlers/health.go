package handlers

import (
	"net/http"
	"time"

	"github.com/OldStager01/diabetes-risk/internal/model"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	artifacts *model.Artifacts
}

func NewHealthHandler(artifacts *model.Artifacts) *HealthHandler {
	return &HealthHandler{artifacts: artifacts}
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
	Artifacts *model.Info       `json:"artifacts,omitempty"`
}

func (h *HealthHandler) loaded() bool {
	return h.artifacts != nil && h.artifacts.Scaler() != nil && h.artifacts.Classifier() != nil
}

func (h *HealthHandler) Health(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.loaded() {
		checks["artifacts"] = "healthy"
	} else {
		checks["artifacts"] = "unhealthy: not loaded"
		status = "unhealthy"
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.loaded() {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:    "not ready",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	info := h.artifacts.Info()
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ready",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Artifacts: &info,
	})
}

func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
