// Package auth provides the authentication module's route registrations.
// Handlers are scaffolding: they acknowledge the mount with a fixed
// status until real authentication flows land.
package auth

import (
	"net/http"

	"github.com/JaimeStill/web-lab/pkg/routing"
)

// RegisterRoutes adds the module's routes to the sub-router mounted
// under the auth prefix.
func RegisterRoutes(sub *routing.SubRouter) error {
	return sub.Register(http.MethodGet, "/", handleStatus)
}
