package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/JaimeStill/web-lab/internal/app"
	"github.com/JaimeStill/web-lab/internal/config"
	"github.com/JaimeStill/web-lab/internal/server"
	"github.com/JaimeStill/web-lab/pkg/logging"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	ctx        context.Context
	cancel     context.CancelFunc
	shutdownWg sync.WaitGroup

	logger *slog.Logger
	server server.System
}

// NewService creates and initializes the service with all subsystems.
func NewService(cfg *config.Config) (*Service, error) {
	ctx, cancel := context.WithCancel(context.Background())

	logger := logging.New(&cfg.Logging)

	router, err := app.New(logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("router construction failed: %w", err)
	}

	middlewareSys := buildMiddleware(logger, cfg)
	handler := middlewareSys.Apply(router)

	serverSys := server.New(&cfg.Server, handler, logger)

	return &Service{
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
		server: serverSys,
	}, nil
}

// Start begins all subsystems and returns when they are ready.
func (s *Service) Start() error {
	s.logger.Info("starting service")

	if err := s.server.Start(s.ctx, &s.shutdownWg); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	s.logger.Info("service started")
	return nil
}

// Shutdown gracefully stops all subsystems within the provided context
// deadline.
func (s *Service) Shutdown(ctx context.Context) error {
	s.logger.Info("initiating shutdown")

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("all subsystems shut down successfully")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}
