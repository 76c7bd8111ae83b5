package negotiate

import (
	"go.uber.org/fx"
)

// Module returns the Fx module providing a *Driver.
func Module() fx.Option {
	return fx.Module("negotiate",
		fx.Provide(ProvideDriver),
	)
}

// ProvideDriver constructs a Driver with the default Config for
// dependency injection.
func ProvideDriver() *Driver {
	return NewDriver(NewConfig())
}
