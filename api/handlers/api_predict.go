package handlers

import (
	"net/http"

	"github.com/OldStager01/diabetes-risk/api/middleware"
	"github.com/OldStager01/diabetes-risk/internal/predictor"
	"github.com/OldStager01/diabetes-risk/pkg/models"
	"github.com/gin-gonic/gin"
)

// APIHandler exposes the prediction as JSON.
type APIHandler struct {
	predictor Predictor
}

func NewAPIHandler(p Predictor) *APIHandler {
	return &APIHandler{predictor: p}
}

type ErrorResponse struct {
	Error string `json:"error" example:"field Age is required"`
	Kind  string `json:"kind" example:"invalid_input"`
}

// Predict godoc
// @Summary Predict diabetes risk
// @Description Scores seven health measurements with the loaded scaler and classifier
// @Tags Prediction
// @Accept json
// @Produce json
// @Param request body models.PatientRequest true "Health measurements"
// @Success 200 {object} models.PredictionResult "Prediction"
// @Failure 400 {object} ErrorResponse "Invalid input or model failure"
// @Router /api/v1/predict [post]
func (h *APIHandler) Predict(c *gin.Context) {
	var req models.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, predictor.InvalidInput(err))
		return
	}

	input, err := predictor.FromRequest(req)
	if err != nil {
		h.fail(c, err)
		return
	}

	result, err := h.predictor.Predict(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *APIHandler) fail(c *gin.Context, err error) {
	kind := predictor.KindOf(err)
	c.Set(middleware.ErrorKindKey, string(kind))
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: err.Error(),
		Kind:  string(kind),
	})
}
