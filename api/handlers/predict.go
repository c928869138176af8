package handlers

import (
	"context"
	"net/http"

	"github.com/OldStager01/diabetes-risk/api/middleware"
	"github.com/OldStager01/diabetes-risk/internal/predictor"
	"github.com/OldStager01/diabetes-risk/pkg/models"
	"github.com/OldStager01/diabetes-risk/web"
	"github.com/gin-gonic/gin"
)

// Predictor scores a single patient input.
type Predictor interface {
	Predict(ctx context.Context, in models.PatientInput) (*models.PredictionResult, error)
}

type PageOptions struct {
	Title       string
	LandingPage bool
	LivePreview bool
}

// PredictionHandler serves the HTML form flow.
type PredictionHandler struct {
	predictor Predictor
	opts      PageOptions
}

func NewPredictionHandler(p Predictor, opts PageOptions) *PredictionHandler {
	if opts.Title == "" {
		opts.Title = "Diabetes Risk Prediction"
	}
	return &PredictionHandler{predictor: p, opts: opts}
}

// Index shows the landing page, or the form directly when the landing page
// is disabled.
func (h *PredictionHandler) Index(c *gin.Context) {
	if !h.opts.LandingPage {
		h.Form(c)
		return
	}
	c.HTML(http.StatusOK, web.TemplateLanding, gin.H{
		"Title": h.opts.Title,
	})
}

func (h *PredictionHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, web.TemplateForm, gin.H{
		"Title":       h.opts.Title,
		"Fields":      models.Fields,
		"LivePreview": h.opts.LivePreview,
	})
}

// Result parses the submitted form and renders the prediction. Input and
// model failures both answer 400 with a plain-text "Error: ..." body.
func (h *PredictionHandler) Result(c *gin.Context) {
	input, err := predictor.ParseForm(c.GetPostForm)
	if err != nil {
		h.fail(c, err)
		return
	}

	result, err := h.predictor.Predict(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, web.TemplateResult, gin.H{
		"Title":  h.opts.Title,
		"Result": result,
	})
}

func (h *PredictionHandler) fail(c *gin.Context, err error) {
	c.Set(middleware.ErrorKindKey, string(predictor.KindOf(err)))
	c.String(http.StatusBadRequest, "Error: %s", err.Error())
}
