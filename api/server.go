package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/OldStager01/diabetes-risk/api/docs"
	"github.com/OldStager01/diabetes-risk/api/handlers"
	"github.com/OldStager01/diabetes-risk/api/middleware"
	"github.com/OldStager01/diabetes-risk/api/websocket"
	"github.com/OldStager01/diabetes-risk/internal/model"
	"github.com/OldStager01/diabetes-risk/internal/predictor"
	"github.com/OldStager01/diabetes-risk/pkg/config"
	"github.com/OldStager01/diabetes-risk/web"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	artifacts  *model.Artifacts
	predictor  *predictor.Service
}

// NewServer wires the routes around already-loaded artifacts. The caller
// owns loading so that a missing artifact stops startup before any route
// exists.
func NewServer(cfg *config.Config, artifacts *model.Artifacts) (*Server, error) {
	switch cfg.App.Mode {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	// GET /result is a wrong method, not a missing page
	router.HandleMethodNotAllowed = true

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(templates)

	s := &Server{
		router:    router,
		config:    cfg,
		artifacts: artifacts,
		predictor: predictor.NewService(artifacts, predictor.Options{
			IncludeConfidence: cfg.Features.IncludeConfidence,
			CacheSize:         cfg.Features.CacheSize,
		}),
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.API.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
		IdleTimeout:  cfg.API.IdleTimeout,
	}

	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.RequestLogger())
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.RequestSizeLimit(s.config.API.MaxBodyBytes))

	if s.config.API.RateLimit > 0 {
		rateLimiter := middleware.NewRateLimiter(s.config.API.RateLimit, time.Minute)
		s.router.Use(middleware.RateLimit(rateLimiter))
	}
}

func (s *Server) setupRoutes() {
	// Handlers
	healthHandler := handlers.NewHealthHandler(s.artifacts)
	pageHandler := handlers.NewPredictionHandler(s.predictor, handlers.PageOptions{
		Title:       "Diabetes Risk Prediction",
		LandingPage: s.config.Features.LandingPage,
		LivePreview: s.config.WebSocket.Enabled,
	})
	apiHandler := handlers.NewAPIHandler(s.predictor)

	// Health routes
	s.router.GET("/health", healthHandler.Health)
	s.router.GET("/health/ready", healthHandler.Ready)
	s.router.GET("/health/live", healthHandler.Live)

	// Form pages
	s.router.GET("/", pageHandler.Index)
	s.router.GET("/predict", pageHandler.Form)
	s.router.POST("/result", pageHandler.Result)
	s.router.StaticFS("/static", web.Static())

	// JSON API
	v1 := s.router.Group("/api/v1")
	v1.Use(middleware.CORS(middleware.CORSConfigFrom(s.config.API.CORS)))
	{
		v1.POST("/predict", apiHandler.Predict)
		v1.OPTIONS("/predict", func(c *gin.Context) {})
	}

	if s.config.API.Swagger {
		s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if s.config.WebSocket.Enabled {
		wsCfg := s.config.WebSocket
		s.router.GET("/ws/predict", websocket.ServeWebSocket(s.predictor, websocket.Config{
			MaxMessageSize:  wsCfg.MaxMessageSize,
			PingInterval:    wsCfg.PingInterval,
			PongTimeout:     wsCfg.PongTimeout,
			WriteTimeout:    wsCfg.WriteTimeout,
			ReadBufferSize:  wsCfg.ReadBufferSize,
			WriteBufferSize: wsCfg.WriteBufferSize,
			ClientBuffer:    wsCfg.ClientBuffer,
		}))
	}
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func (s *Server) Router() *gin.Engine {
	return s.router
}
