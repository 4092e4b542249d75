//go:build wireinject
// +build wireinject

package di

import (
	"RiskBoard/internal/domain/repository"
	"RiskBoard/internal/service/riskcurve"
	"RiskBoard/pkg/config"
	"RiskBoard/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Metrics
		ProvideMetrics,

		// Domain data and auth primitives
		ProvideAssets,
		ProvideTokenCodec,
		ProvideSessionStore,

		// Infrastructure clients
		ProvideQuoteCache,
		ProvidePriceSource,
		ProvideRiskClient,
		wire.Bind(new(repository.RiskSource), new(*riskcurve.Client)),

		// Use cases
		ProvideDashboard,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
