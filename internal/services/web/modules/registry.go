package modules

import (
	"github.com/spanlight/spanlight/internal/services/web/modules/spans"
	"github.com/spanlight/spanlight/internal/services/web/modules/traces"
)

// DefaultModules returns the stable web module set in mount order.
func DefaultModules() []Module {
	return []Module{
		traces.New(),
		spans.New(),
	}
}
