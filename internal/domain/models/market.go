package models

// Asset is one static catalog entry. The catalog is loaded once at startup
// and its order is preserved through the whole render pipeline.
type Asset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PriceQuote is one asset's spot price for a fetch cycle.
type PriceQuote struct {
	AssetID     string  `json:"asset_id"`
	PriceUSD    float64 `json:"price_usd"`
	Change24Pct float64 `json:"change_24h_pct"`
}

// RiskPoint is one row of a risk curve. RiskPct is already scaled to
// percentage units (provider fraction * 100).
type RiskPoint struct {
	Price   float64 `json:"price"`
	RiskPct float64 `json:"risk_pct"`
}

// RiskCurve is a sequence of risk points sorted ascending by price.
// A nil curve means the fetch failed or the asset is not covered.
type RiskCurve []RiskPoint

// DisplayRecord is the join of catalog entry, quote and matched risk point
// handed to the renderer. A nil Risk means "No Chart Data".
type DisplayRecord struct {
	Asset Asset       `json:"asset"`
	Quote *PriceQuote `json:"quote,omitempty"`
	Risk  *RiskPoint  `json:"risk,omitempty"`
}
