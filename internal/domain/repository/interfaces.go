package repository

import (
	"context"

	"RiskBoard/internal/domain/models"
)

// PriceSource fetches spot prices for a set of assets in one batched call.
// A transport or decode failure fails the whole call; an asset missing from
// a successful response is simply absent from the map.
type PriceSource interface {
	FetchPrices(ctx context.Context, assetIDs []string) (map[string]models.PriceQuote, error)
}

// RiskSource fetches per-asset risk curves concurrently. The result always
// has one slot per input id, in input order; a nil slot means that asset's
// fetch failed or the asset is not covered. Setup failures (missing
// credentials) yield a nil result instead of an error.
type RiskSource interface {
	FetchCurves(ctx context.Context, assetIDs []string) []models.RiskCurve
}

// Metrics records operational metrics for the dashboard.
type Metrics interface {
	RecordRenderCycle(authenticated bool)
	RecordError(kind string)
	RecordAuthResult(result string)
	RecordLastPrice(asset string, price float64)
	RecordFetchLatency(provider string, seconds float64)
}
