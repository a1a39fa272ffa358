package dashboard

import "net/http"

// handleStatus confirms the dashboard module is mounted and reachable.
func handleStatus(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
