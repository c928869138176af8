package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	var errs []error

	// App validation
	if c.App.Name == "" {
		errs = append(errs, errors.New("app.name is required"))
	}

	validModes := map[string]bool{"development": true, "production": true, "test": true}
	if !validModes[c.App.Mode] {
		errs = append(errs, fmt.Errorf("app.mode must be one of: development, production, test"))
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.App.LogLevel] {
		errs = append(errs, fmt.Errorf("app.log_level must be one of: debug, info, warn, error"))
	}

	if c.App.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("app.shutdown_timeout must not be negative"))
	}

	// API validation
	if c.API.Port <= 0 || c.API.Port > 65535 {
		errs = append(errs, errors.New("api.port must be between 1 and 65535"))
	}
	if c.API.RateLimit < 0 {
		errs = append(errs, errors.New("api.rate_limit must not be negative"))
	}
	if c.API.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("api.max_body_bytes must be positive"))
	}

	// Artifact validation
	if c.Artifacts.ScalerPath == "" {
		errs = append(errs, errors.New("artifacts.scaler_path is required"))
	}
	if c.Artifacts.ModelPath == "" {
		errs = append(errs, errors.New("artifacts.model_path is required"))
	}
	if c.Artifacts.ScalerPath != "" && c.Artifacts.ScalerPath == c.Artifacts.ModelPath {
		errs = append(errs, errors.New("artifacts.scaler_path and artifacts.model_path must differ"))
	}

	if c.Features.CacheSize < 0 {
		errs = append(errs, errors.New("features.cache_size must not be negative"))
	}

	// WebSocket validation
	if c.WebSocket.Enabled {
		if c.WebSocket.MaxMessageSize <= 0 {
			errs = append(errs, errors.New("websocket.max_message_size must be positive"))
		}
		if c.WebSocket.PingInterval <= 0 || c.WebSocket.PongTimeout <= 0 {
			errs = append(errs, errors.New("websocket.ping_interval and pong_timeout must be positive"))
		}
		if c.WebSocket.PingInterval >= c.WebSocket.PongTimeout {
			errs = append(errs, errors.New("websocket.ping_interval must be less than pong_timeout"))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
