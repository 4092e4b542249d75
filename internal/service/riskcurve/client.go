package riskcurve

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"RiskBoard/internal/domain/models"
	drepo "RiskBoard/internal/domain/repository"
	xhttp "RiskBoard/pkg/http"
	xlogger "RiskBoard/pkg/logger"
)

// Client implements a RiskSource backed by an authenticated per-asset
// risk-curve provider. One GET per asset, all issued concurrently.
type Client struct {
	baseURL string
	bearer  string
	client  *xhttp.Client
	logger  *xlogger.Logger
}

// New creates a risk-curve client. baseURL and bearer may be empty; in that
// case every fetch degrades to "no risk data" instead of failing.
func New(baseURL, bearer string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		bearer:  bearer,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// SetLogger attaches a logger for per-asset fetch warnings.
func (c *Client) SetLogger(l *xlogger.Logger) {
	c.logger = l
}

var _ drepo.RiskSource = (*Client)(nil)

// envelope mirrors the provider response: data.USD is an array of
// [price, rawRiskFraction] pairs.
type envelope struct {
	Data *struct {
		USD [][2]float64 `json:"USD"`
	} `json:"data"`
}

// FetchCurves fetches the risk curve of every asset concurrently. The
// result always has one slot per input id, in input order; a failed or
// uncovered asset resolves to a nil slot without disturbing its siblings.
// Missing credentials degrade the whole batch to empty.
func (c *Client) FetchCurves(ctx context.Context, assetIDs []string) []models.RiskCurve {
	if c.baseURL == "" || c.bearer == "" {
		return nil
	}

	curves := make([]models.RiskCurve, len(assetIDs))

	var wg sync.WaitGroup
	for i, id := range assetIDs {
		wg.Add(1)
		go func(slot int, assetID string) {
			defer wg.Done()
			curve, err := c.fetchOne(ctx, assetID)
			if err != nil {
				c.warn("risk curve fetch failed", assetID, err)
				return
			}
			curves[slot] = curve
		}(i, id)
	}
	wg.Wait()

	return curves
}

func (c *Client) fetchOne(ctx context.Context, assetID string) (models.RiskCurve, error) {
	var body envelope
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + assetID,
		Headers: map[string]string{
			"Authorization": "Bearer " + c.bearer,
		},
	}, &body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", assetID, err)
	}
	if body.Data == nil {
		return nil, fmt.Errorf("fetch %s: envelope has no data field", assetID)
	}

	curve := make(models.RiskCurve, 0, len(body.Data.USD))
	for _, pair := range body.Data.USD {
		curve = append(curve, models.RiskPoint{
			Price:   pair[0],
			RiskPct: pair[1] * 100,
		})
	}

	// providers usually return ascending prices but do not guarantee it;
	// matching depends on sorted order
	sort.Slice(curve, func(i, j int) bool { return curve[i].Price < curve[j].Price })

	return curve, nil
}

func (c *Client) warn(msg, assetID string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Warn(msg, xlogger.String("asset", assetID), xlogger.Error(err))
}
