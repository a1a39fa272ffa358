package routing

import (
	"log/slog"
	"net/http"
	"strings"
)

// Mount associates a path prefix with the sub-router handling paths
// beneath it.
type Mount struct {
	Prefix string
	Sub    *SubRouter
}

// Router composes sub-routers under distinct mount prefixes and
// dispatches requests to the longest matching prefix. Mounts are added
// at construction time only; dispatch never mutates the table.
type Router struct {
	mounts   []Mount
	mounted  map[string]bool
	fallback http.HandlerFunc
	logger   *slog.Logger
}

// NewRouter creates a router with no mounts and a default 404 fallback.
func NewRouter(logger *slog.Logger) *Router {
	return &Router{
		mounted: map[string]bool{},
		logger:  logger,
	}
}

// Mount attaches a sub-router under the given prefix. Mounting the same
// prefix twice fails rather than silently replacing the sub-router.
func (r *Router) Mount(prefix string, sub *SubRouter) error {
	prefix = NormalizePath(prefix)

	if r.mounted[prefix] {
		return duplicateMount(prefix)
	}

	r.mounted[prefix] = true
	r.mounts = append(r.mounts, Mount{Prefix: prefix, Sub: sub})
	return nil
}

// SetFallback replaces the default 404 handler invoked when no mount or
// route matches a request.
func (r *Router) SetFallback(handler http.HandlerFunc) {
	r.fallback = handler
}

// Prefixes returns the mounted prefixes in mount order.
func (r *Router) Prefixes() []string {
	prefixes := make([]string, len(r.mounts))
	for i, m := range r.mounts {
		prefixes[i] = m.Prefix
	}
	return prefixes
}

// ServeHTTP dispatches the request to the sub-router mounted under the
// longest prefix matching the request path on a segment boundary. Handler
// panics are recovered here and converted to a 500 response; the fault is
// logged, never written to the client.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error(
				"handler panic",
				"method", req.Method,
				"path", req.URL.Path,
				"panic", rec,
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
	}()

	path := NormalizePath(req.URL.Path)

	mount, ok := r.match(path)
	if !ok {
		r.notFound(w, req)
		return
	}

	handler, ok := mount.Sub.Handler(req.Method, suffix(mount.Prefix, path))
	if !ok {
		r.notFound(w, req)
		return
	}

	handler(w, req)
}

// match returns the mount with the longest prefix matching path. Prefix
// matching is exact-segment: "/auth" matches "/auth" and "/auth/...",
// never "/authorize".
func (r *Router) match(path string) (Mount, bool) {
	var (
		best  Mount
		found bool
	)

	for _, m := range r.mounts {
		if !prefixMatches(m.Prefix, path) {
			continue
		}
		if !found || len(m.Prefix) > len(best.Prefix) {
			best = m
			found = true
		}
	}

	return best, found
}

func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	if r.fallback != nil {
		r.fallback(w, req)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func prefixMatches(prefix, path string) bool {
	if prefix == "/" {
		return true
	}
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}

// suffix strips the mount prefix from path, yielding the sub-router's
// local path. An exact prefix hit maps to the sub-router root "/".
func suffix(prefix, path string) string {
	if prefix == "/" {
		return path
	}
	if path == prefix {
		return "/"
	}
	return path[len(prefix):]
}
