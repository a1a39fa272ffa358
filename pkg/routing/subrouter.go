package routing

import "net/http"

// SubRouter holds an exact-match route table. Paths are normalized on
// registration and matched against the already-stripped suffix the root
// router forwards. There is no prefix matching inside a sub-router.
type SubRouter struct {
	handlers map[string]http.HandlerFunc
	routes   []Route
}

// NewSubRouter creates an empty sub-router.
func NewSubRouter() *SubRouter {
	return &SubRouter{
		handlers: map[string]http.HandlerFunc{},
	}
}

// Register adds a route for the given method and path. Registering the
// same (method, path) pair twice fails rather than silently overwriting.
func (s *SubRouter) Register(method, path string, handler http.HandlerFunc) error {
	path = NormalizePath(path)
	key := routeKey(method, path)

	if _, exists := s.handlers[key]; exists {
		return duplicateRoute(method, path)
	}

	s.handlers[key] = handler
	s.routes = append(s.routes, Route{Method: method, Path: path, Handler: handler})
	return nil
}

// Handler returns the handler registered for the method and normalized
// path, reporting whether a match exists.
func (s *SubRouter) Handler(method, path string) (http.HandlerFunc, bool) {
	h, ok := s.handlers[routeKey(method, NormalizePath(path))]
	return h, ok
}

// Routes returns the registered routes in registration order.
func (s *SubRouter) Routes() []Route {
	return s.routes
}
