package coingecko

import (
	"context"
	"fmt"
	"strings"
	"time"

	"RiskBoard/internal/domain/models"
	drepo "RiskBoard/internal/domain/repository"
	"RiskBoard/internal/service/ratelimit"
	xhttp "RiskBoard/pkg/http"
)

// Client implements a PriceSource backed by the CoinGecko simple price API.
type Client struct {
	baseURL string
	client  *xhttp.Client
	limiter *ratelimit.Limiter
}

// Option configures Client.
type Option func(*Client)

// New creates a CoinGecko price client.
func New(baseURL string, timeout time.Duration, opts ...Option) drepo.PriceSource {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithLimiter attaches an outbound rate limiter. CoinGecko's free tier
// throttles aggressively, so callers should set one in production.
func WithLimiter(l *ratelimit.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// quoteRow mirrors one entry of the simple/price response.
type quoteRow struct {
	USD       float64 `json:"usd"`
	USD24hChg float64 `json:"usd_24h_change"`
}

// FetchPrices fetches spot prices for all assets in one batched call. The
// whole call fails on transport or decode errors; an asset the provider
// does not know is simply absent from the returned map.
func (c *Client) FetchPrices(ctx context.Context, assetIDs []string) (map[string]models.PriceQuote, error) {
	if len(assetIDs) == 0 {
		return map[string]models.PriceQuote{}, nil
	}
	if !c.limiter.Allow() {
		return nil, fmt.Errorf("coingecko: rate limited locally")
	}

	var body map[string]quoteRow
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/simple/price",
		QueryParams: map[string][]string{
			"ids":                 {strings.Join(assetIDs, ",")},
			"vs_currencies":       {"usd"},
			"include_24hr_change": {"true"},
		},
	}, &body)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}

	quotes := make(map[string]models.PriceQuote, len(body))
	for _, id := range assetIDs {
		row, ok := body[id]
		if !ok {
			continue
		}
		quotes[id] = models.PriceQuote{
			AssetID:     id,
			PriceUSD:    row.USD,
			Change24Pct: row.USD24hChg,
		}
	}
	return quotes, nil
}
