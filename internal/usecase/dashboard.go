package usecase

import (
	"context"
	"fmt"
	"time"

	"RiskBoard/internal/auth"
	"RiskBoard/internal/domain/models"
	drepo "RiskBoard/internal/domain/repository"
	"RiskBoard/internal/session"
	"RiskBoard/pkg/cache"
	xlogger "RiskBoard/pkg/logger"
)

const quoteCacheKey = "quotes:latest"

// Dashboard runs one render cycle per request: session evaluation, price
// fetch (always), risk fetch (authorized sessions only) and the final join.
type Dashboard struct {
	assets   []models.Asset
	assetIDs []string
	prices   drepo.PriceSource
	risks    drepo.RiskSource
	codec    *auth.Codec
	sessions *session.Store
	cache    cache.Service
	cacheTTL time.Duration
	metrics  drepo.Metrics
	logger   *xlogger.Logger
}

// NewDashboard creates the dashboard use case. cache may be nil to disable
// quote caching.
func NewDashboard(
	assets []models.Asset,
	prices drepo.PriceSource,
	risks drepo.RiskSource,
	codec *auth.Codec,
	sessions *session.Store,
	quoteCache cache.Service,
	cacheTTL time.Duration,
	metrics drepo.Metrics,
	logger *xlogger.Logger,
) *Dashboard {
	ids := make([]string, len(assets))
	for i, a := range assets {
		ids[i] = a.ID
	}
	return &Dashboard{
		assets:   assets,
		assetIDs: ids,
		prices:   prices,
		risks:    risks,
		codec:    codec,
		sessions: sessions,
		cache:    quoteCache,
		cacheTTL: cacheTTL,
		metrics:  metrics,
		logger:   logger,
	}
}

// SetLogger attaches a logger for degraded-path warnings.
func (d *Dashboard) SetLogger(l *xlogger.Logger) {
	d.logger = l
}

// Render executes one full render cycle for the given session. The optional
// event carries a user-submitted token. A market data failure is the only
// error path; everything else degrades to a reduced view.
func (d *Dashboard) Render(ctx context.Context, sessionID string, ev *models.AuthEvent) (*models.DashboardResponse, error) {
	var resp *models.DashboardResponse
	var renderErr error

	d.sessions.WithSession(sessionID, func(s models.Session) models.Session {
		s, msg := auth.Transition(s, ev, d.codec)
		if ev != nil {
			result := "rejected"
			if s.Authenticated {
				result = "accepted"
			}
			d.metrics.RecordAuthResult(result)
		}

		quotes, err := d.fetchPrices(ctx)
		if err != nil {
			// the price panel cannot render at all; propagate, keeping the
			// session transition that already happened
			d.metrics.RecordError("transport")
			renderErr = err
			return s
		}

		var curves []models.RiskCurve
		if s.Authenticated {
			start := time.Now()
			curves = d.risks.FetchCurves(ctx, d.assetIDs)
			d.metrics.RecordFetchLatency("risk", time.Since(start).Seconds())
			// a nil batch means the provider is not configured; a delivered
			// batch reports failures per slot
			if curves == nil {
				d.metrics.RecordError("risk_not_configured")
			} else {
				for _, curve := range curves {
					if curve == nil {
						d.metrics.RecordError("risk_fetch")
					}
				}
			}
		}

		records := Aggregate(d.assets, quotes, curves, s.Authenticated)
		d.metrics.RecordRenderCycle(s.Authenticated)

		resp = &models.DashboardResponse{
			Message:       msg,
			Authenticated: s.Authenticated,
			Records:       records,
		}
		return s
	})

	if renderErr != nil {
		return nil, fmt.Errorf("render cycle: %w", renderErr)
	}
	return resp, nil
}

// IssueToken mints a fresh access token from the shared secret.
func (d *Dashboard) IssueToken(ttl time.Duration) (string, error) {
	return d.codec.Issue(ttl)
}

func (d *Dashboard) fetchPrices(ctx context.Context) (map[string]models.PriceQuote, error) {
	if d.cache != nil && d.cacheTTL > 0 {
		var cached map[string]models.PriceQuote
		if err := d.cache.Get(ctx, quoteCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	start := time.Now()
	quotes, err := d.prices.FetchPrices(ctx, d.assetIDs)
	d.metrics.RecordFetchLatency("market", time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	for id, q := range quotes {
		d.metrics.RecordLastPrice(id, q.PriceUSD)
	}

	if d.cache != nil && d.cacheTTL > 0 {
		if err := d.cache.Set(ctx, quoteCacheKey, quotes, d.cacheTTL); err != nil {
			d.warn("quote cache write failed", err)
		}
	}
	return quotes, nil
}

func (d *Dashboard) warn(msg string, err error) {
	if d.logger == nil {
		return
	}
	d.logger.Warn(msg, xlogger.Error(err))
}
