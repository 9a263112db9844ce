//go:build wireinject
// +build wireinject

package main

import (
	"hl-data/internal/app"

	"github.com/google/wire"
)

// InitializeRunner builds the Runner (Config + savers) via Wire.
func InitializeRunner() (*app.Runner, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideEventSaver,
		app.ProvideCandleSaver,
		wire.Struct(new(app.Runner), "Cfg", "Events", "Candles"),
	)
	return nil, nil
}
