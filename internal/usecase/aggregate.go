package usecase

import (
	"sort"

	"RiskBoard/internal/domain/models"
)

// Aggregate joins the asset catalog, the quote map and the positionally
// aligned risk curves into the ordered display records. Assets without a
// quote are skipped entirely. Risk is only attached when authorized is set;
// a nil curve slot or a quote below the whole curve leaves Risk nil, which
// the renderer shows as "No Chart Data".
func Aggregate(assets []models.Asset, quotes map[string]models.PriceQuote, curves []models.RiskCurve, authorized bool) []models.DisplayRecord {
	records := make([]models.DisplayRecord, 0, len(assets))
	for i, asset := range assets {
		quote, ok := quotes[asset.ID]
		if !ok {
			continue
		}

		rec := models.DisplayRecord{Asset: asset, Quote: &quote}
		if authorized && i < len(curves) {
			rec.Risk = matchRisk(curves[i], quote.PriceUSD)
		}
		records = append(records, rec)
	}
	return records
}

// matchRisk returns the curve point with the largest price that is still
// <= the current price. Requires the curve sorted ascending by price.
// Returns nil when the curve is empty or the price sits below its range.
func matchRisk(curve models.RiskCurve, price float64) *models.RiskPoint {
	idx := sort.Search(len(curve), func(i int) bool { return curve[i].Price > price }) - 1
	if idx < 0 {
		return nil
	}
	point := curve[idx]
	return &point
}
