package di

import (
	"fmt"

	"RiskBoard/internal/auth"
	"RiskBoard/internal/domain/models"
	"RiskBoard/internal/domain/repository"
	"RiskBoard/internal/service/coingecko"
	"RiskBoard/internal/service/ratelimit"
	"RiskBoard/internal/service/riskcurve"
	"RiskBoard/internal/session"
	"RiskBoard/internal/usecase"
	"RiskBoard/pkg/cache"
	"RiskBoard/pkg/config"
	"RiskBoard/pkg/metrics"
	"RiskBoard/pkg/server"
)

// ProvideAssets builds the immutable asset catalog from config, preserving
// file order.
func ProvideAssets(cfg *config.Config) []models.Asset {
	assets := make([]models.Asset, len(cfg.Assets))
	for i, a := range cfg.Assets {
		name := a.Name
		if name == "" {
			name = a.ID
		}
		assets[i] = models.Asset{ID: a.ID, Name: name}
	}
	return assets
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideTokenCodec creates the token codec from the shared secret.
func ProvideTokenCodec(cfg *config.Config) *auth.Codec {
	return auth.NewCodec(cfg.Auth.SigningSecret)
}

// ProvideSessionStore creates the in-process session store.
func ProvideSessionStore(cfg *config.Config) *session.Store {
	return session.NewStore(cfg.Auth.SessionTTL)
}

// ProvideQuoteCache creates the quote cache backend selected by config.
func ProvideQuoteCache(cfg *config.Config) (cache.Service, error) {
	switch cfg.Cache.Backend {
	case "redis":
		c, err := cache.NewRedisCache(
			cache.WithAddr(cfg.Cache.Redis.Addr),
			cache.WithCredentials(cfg.Cache.Redis.Password, cfg.Cache.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("quote cache: %w", err)
		}
		return c, nil
	default:
		return cache.NewMemoryCache(), nil
	}
}

// ProvidePriceSource creates the CoinGecko price client.
func ProvidePriceSource(cfg *config.Config) repository.PriceSource {
	var opts []coingecko.Option
	if cfg.Market.RatePerSec > 0 {
		opts = append(opts, coingecko.WithLimiter(ratelimit.New(cfg.Market.RateBurst, cfg.Market.RatePerSec)))
	}
	return coingecko.New(cfg.Market.BaseURL, cfg.Market.Timeout, opts...)
}

// ProvideRiskClient creates the authenticated risk-curve client. Returned
// concrete so the app can attach its logger once one exists.
func ProvideRiskClient(cfg *config.Config) *riskcurve.Client {
	return riskcurve.New(cfg.Risk.BaseURL, cfg.Risk.BearerToken, cfg.Risk.Timeout)
}

// ProvideDashboard creates the dashboard use case.
func ProvideDashboard(
	cfg *config.Config,
	assets []models.Asset,
	prices repository.PriceSource,
	risks repository.RiskSource,
	codec *auth.Codec,
	sessions *session.Store,
	quoteCache cache.Service,
	m repository.Metrics,
) *usecase.Dashboard {
	return usecase.NewDashboard(
		assets,
		prices,
		risks,
		codec,
		sessions,
		quoteCache,
		cfg.Market.CacheTTL,
		m,
		nil,
	)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, dash *usecase.Dashboard, quoteCache cache.Service, risk *riskcurve.Client) *server.App {
	return server.New(cfg, dash, quoteCache, risk)
}
