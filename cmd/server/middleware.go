package main

import (
	"log/slog"

	"github.com/JaimeStill/web-lab/internal/config"
	"github.com/JaimeStill/web-lab/pkg/middleware"
)

// buildMiddleware creates and configures the middleware stack with
// logging, CORS, and trailing-slash normalization.
func buildMiddleware(logger *slog.Logger, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.Logger(logger))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	middlewareSys.Use(middleware.TrimSlash())
	return middlewareSys
}
