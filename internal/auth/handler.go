package auth

import "net/http"

// handleStatus confirms the auth module is mounted and reachable.
func handleStatus(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
