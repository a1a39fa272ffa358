package routing

import (
	"errors"
	"fmt"
)

// ErrDuplicateRoute indicates a (method, path) pair was registered twice
// within the same sub-router.
var ErrDuplicateRoute = errors.New("duplicate route")

// ErrDuplicateMount indicates a prefix was mounted twice on a router.
var ErrDuplicateMount = errors.New("duplicate mount")

func duplicateRoute(method, path string) error {
	return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, path)
}

func duplicateMount(prefix string) error {
	return fmt.Errorf("%w: %s", ErrDuplicateMount, prefix)
}
