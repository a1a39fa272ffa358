package app

import (
	"net/http"

	"github.com/JaimeStill/web-lab/pkg/handlers"
	"github.com/JaimeStill/web-lab/pkg/routing"
)

func registerRootRoutes(sub *routing.SubRouter) error {
	if err := sub.Register(http.MethodGet, "/", handleHome); err != nil {
		return err
	}
	return sub.Register(http.MethodGet, "/healthz", handleHealthCheck)
}

// handleHome responds with the scaffold greeting.
func handleHome(w http.ResponseWriter, r *http.Request) {
	handlers.RespondText(w, http.StatusOK, "hello world!")
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
