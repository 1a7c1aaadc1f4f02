package adapters

import (
	"github.com/google/wire"
	internalconfig "github.com/trebuchet-org/netcfg/internal/adapters/config"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// ConfigSet provides configuration-backed implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewNetworkResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolver)),

	internalconfig.NewRuntimeSourceAdapter,
	wire.Bind(new(usecase.ConfigSource), new(*internalconfig.RuntimeSourceAdapter)),

	internalconfig.NewValidatorAdapter,
	wire.Bind(new(usecase.ConfigValidator), new(*internalconfig.ValidatorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ConfigSet,
)
