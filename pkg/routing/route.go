// Package routing provides an immutable request-routing core: sub-routers
// holding exact-match route tables, composed under path prefixes by a root
// router. Registration happens once at construction; dispatch is read-only
// and safe for concurrent use without locking.
package routing

import (
	"net/http"
	"strings"
)

// Route pairs an HTTP method and exact path with its handler.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// NormalizePath returns the canonical form of a path: leading slash
// present, trailing slash removed. The root path "/" is preserved.
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func routeKey(method, path string) string {
	return method + " " + path
}
