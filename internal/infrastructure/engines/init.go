package engines

import (
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/engines/cppcheck"
)

// NewDefaultRegistry creates a registry with all default engines pre-registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(cppcheck.NewAdapter())
	return r
}
