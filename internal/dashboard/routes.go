// Package dashboard provides the dashboard module's route registrations.
package dashboard

import (
	"net/http"

	"github.com/JaimeStill/web-lab/pkg/routing"
)

// RegisterRoutes adds the module's routes to the sub-router mounted
// under the dashboard prefix.
func RegisterRoutes(sub *routing.SubRouter) error {
	return sub.Register(http.MethodGet, "/", handleStatus)
}
