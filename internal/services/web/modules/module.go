// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/spanlight/spanlight/internal/services/web/module"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies aliases the shared module dependency set. Each module pulls
// only the narrow seams it needs from this struct at mount time.
type Dependencies = module.Dependencies
