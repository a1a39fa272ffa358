package routing_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/web-lab/pkg/routing"
)

func TestSubRouterRegister(t *testing.T) {
	sub := routing.NewSubRouter()

	err := sub.Register(http.MethodGet, "/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	handler, ok := sub.Handler(http.MethodGet, "/")
	if !ok {
		t.Fatal("Handler() did not find registered route")
	}

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestSubRouterRegister_Duplicate(t *testing.T) {
	sub := routing.NewSubRouter()

	handler := func(w http.ResponseWriter, r *http.Request) {}

	if err := sub.Register(http.MethodGet, "/login", handler); err != nil {
		t.Fatalf("first Register() failed: %v", err)
	}

	err := sub.Register(http.MethodGet, "/login", handler)
	if err == nil {
		t.Fatal("duplicate Register() succeeded, want error")
	}
	if !errors.Is(err, routing.ErrDuplicateRoute) {
		t.Errorf("error = %v, want ErrDuplicateRoute", err)
	}
}

func TestSubRouterRegister_DuplicateAfterNormalization(t *testing.T) {
	sub := routing.NewSubRouter()

	handler := func(w http.ResponseWriter, r *http.Request) {}

	if err := sub.Register(http.MethodGet, "/login", handler); err != nil {
		t.Fatalf("first Register() failed: %v", err)
	}

	err := sub.Register(http.MethodGet, "/login/", handler)
	if !errors.Is(err, routing.ErrDuplicateRoute) {
		t.Errorf("error = %v, want ErrDuplicateRoute (paths normalize to same route)", err)
	}
}

func TestSubRouterRegister_SamePathDifferentMethods(t *testing.T) {
	sub := routing.NewSubRouter()

	handler := func(w http.ResponseWriter, r *http.Request) {}

	if err := sub.Register(http.MethodGet, "/session", handler); err != nil {
		t.Fatalf("GET Register() failed: %v", err)
	}
	if err := sub.Register(http.MethodPost, "/session", handler); err != nil {
		t.Errorf("POST Register() failed for same path: %v", err)
	}
}

func TestSubRouterHandler_NoMatch(t *testing.T) {
	sub := routing.NewSubRouter()

	if err := sub.Register(http.MethodGet, "/", func(w http.ResponseWriter, r *http.Request) {}); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	if _, ok := sub.Handler(http.MethodGet, "/extra"); ok {
		t.Error("Handler() matched unregistered path")
	}

	if _, ok := sub.Handler(http.MethodPost, "/"); ok {
		t.Error("Handler() matched unregistered method")
	}
}

func TestSubRouterHandler_NoPrefixMatching(t *testing.T) {
	sub := routing.NewSubRouter()

	if err := sub.Register(http.MethodGet, "/login", func(w http.ResponseWriter, r *http.Request) {}); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	if _, ok := sub.Handler(http.MethodGet, "/login/extra"); ok {
		t.Error("Handler() matched a path it should only match exactly")
	}
}

func TestSubRouterRoutes_Order(t *testing.T) {
	sub := routing.NewSubRouter()

	handler := func(w http.ResponseWriter, r *http.Request) {}

	paths := []string{"/c", "/a", "/b"}
	for _, path := range paths {
		if err := sub.Register(http.MethodGet, path, handler); err != nil {
			t.Fatalf("Register(%q) failed: %v", path, err)
		}
	}

	routes := sub.Routes()
	if len(routes) != len(paths) {
		t.Fatalf("Routes() returned %d routes, want %d", len(routes), len(paths))
	}

	for i, path := range paths {
		if routes[i].Path != path {
			t.Errorf("Routes()[%d].Path = %q, want %q (registration order)", i, routes[i].Path, path)
		}
	}
}
