// Package app constructs the application's root router. New is the single
// composition point: every mount and route is registered here, once, and
// the resulting router is immutable.
package app

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/web-lab/internal/auth"
	"github.com/JaimeStill/web-lab/internal/dashboard"
	"github.com/JaimeStill/web-lab/pkg/routing"
)

// Mount prefixes for the application's modules.
const (
	RootPrefix      = "/"
	AuthPrefix      = "/auth"
	DashboardPrefix = "/dashboard"
)

// New builds a fresh root router with the full routing table. It performs
// no I/O and binds no network resources, so callers can dispatch against
// the result in-process. Each call yields an independent instance with an
// identical table; any registration conflict fails construction.
func New(logger *slog.Logger) (*routing.Router, error) {
	router := routing.NewRouter(logger)

	root := routing.NewSubRouter()
	if err := registerRootRoutes(root); err != nil {
		return nil, fmt.Errorf("root routes: %w", err)
	}
	if err := router.Mount(RootPrefix, root); err != nil {
		return nil, err
	}

	authSub := routing.NewSubRouter()
	if err := auth.RegisterRoutes(authSub); err != nil {
		return nil, fmt.Errorf("auth routes: %w", err)
	}
	if err := router.Mount(AuthPrefix, authSub); err != nil {
		return nil, err
	}

	dashboardSub := routing.NewSubRouter()
	if err := dashboard.RegisterRoutes(dashboardSub); err != nil {
		return nil, fmt.Errorf("dashboard routes: %w", err)
	}
	if err := router.Mount(DashboardPrefix, dashboardSub); err != nil {
		return nil, err
	}

	return router, nil
}
