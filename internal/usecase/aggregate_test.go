package usecase

import (
	"testing"

	"RiskBoard/internal/domain/models"
)

var testAssets = []models.Asset{
	{ID: "bitcoin", Name: "Bitcoin"},
	{ID: "ethereum", Name: "Ethereum"},
}

func quote(id string, price float64) models.PriceQuote {
	return models.PriceQuote{AssetID: id, PriceUSD: price}
}

func TestAggregateSkipsAssetsWithoutQuote(t *testing.T) {
	quotes := map[string]models.PriceQuote{"bitcoin": quote("bitcoin", 50000)}

	records := Aggregate(testAssets, quotes, nil, false)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Asset.ID != "bitcoin" {
		t.Fatalf("unexpected asset %s", records[0].Asset.ID)
	}
}

func TestAggregateMatchesLargestPriceBelowQuote(t *testing.T) {
	quotes := map[string]models.PriceQuote{"bitcoin": quote("bitcoin", 50000)}
	curves := []models.RiskCurve{
		{{Price: 40000, RiskPct: 10.0}, {Price: 60000, RiskPct: 30.0}},
	}

	records := Aggregate(testAssets[:1], quotes, curves, true)

	if records[0].Risk == nil {
		t.Fatal("expected matched risk point")
	}
	if records[0].Risk.Price != 40000 || records[0].Risk.RiskPct != 10.0 {
		t.Fatalf("unexpected match %+v", records[0].Risk)
	}
}

func TestAggregateExactPriceMatches(t *testing.T) {
	quotes := map[string]models.PriceQuote{"bitcoin": quote("bitcoin", 60000)}
	curves := []models.RiskCurve{
		{{Price: 40000, RiskPct: 10.0}, {Price: 60000, RiskPct: 30.0}},
	}

	records := Aggregate(testAssets[:1], quotes, curves, true)

	if records[0].Risk == nil || records[0].Risk.Price != 60000 {
		t.Fatalf("expected exact boundary to match, got %+v", records[0].Risk)
	}
}

func TestAggregateQuoteBelowCurveRange(t *testing.T) {
	quotes := map[string]models.PriceQuote{"bitcoin": quote("bitcoin", 30000)}
	curves := []models.RiskCurve{
		{{Price: 40000, RiskPct: 10.0}, {Price: 60000, RiskPct: 30.0}},
	}

	records := Aggregate(testAssets[:1], quotes, curves, true)

	if records[0].Risk != nil {
		t.Fatalf("expected no chart data below curve range, got %+v", records[0].Risk)
	}
}

func TestAggregateNilAndEmptyCurves(t *testing.T) {
	quotes := map[string]models.PriceQuote{
		"bitcoin":  quote("bitcoin", 50000),
		"ethereum": quote("ethereum", 3000),
	}
	curves := []models.RiskCurve{nil, {}}

	records := Aggregate(testAssets, quotes, curves, true)

	for _, rec := range records {
		if rec.Risk != nil {
			t.Fatalf("expected no risk for %s, got %+v", rec.Asset.ID, rec.Risk)
		}
	}
}

func TestAggregateUnauthorizedIgnoresCurves(t *testing.T) {
	quotes := map[string]models.PriceQuote{"bitcoin": quote("bitcoin", 50000)}
	curves := []models.RiskCurve{
		{{Price: 40000, RiskPct: 10.0}},
	}

	records := Aggregate(testAssets[:1], quotes, curves, false)

	if records[0].Risk != nil {
		t.Fatal("unauthorized view must not carry risk data")
	}
}

func TestAggregateShortCurveBatch(t *testing.T) {
	// risk batch degraded to empty while quotes are fine
	quotes := map[string]models.PriceQuote{
		"bitcoin":  quote("bitcoin", 50000),
		"ethereum": quote("ethereum", 3000),
	}

	records := Aggregate(testAssets, quotes, nil, true)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for _, rec := range records {
		if rec.Risk != nil {
			t.Fatalf("expected no risk with empty batch, got %+v", rec.Risk)
		}
	}
}

func TestAggregatePreservesCatalogOrder(t *testing.T) {
	quotes := map[string]models.PriceQuote{
		"bitcoin":  quote("bitcoin", 50000),
		"ethereum": quote("ethereum", 3000),
	}

	records := Aggregate(testAssets, quotes, nil, false)

	if records[0].Asset.ID != "bitcoin" || records[1].Asset.ID != "ethereum" {
		t.Fatalf("catalog order not preserved: %+v", records)
	}
}
