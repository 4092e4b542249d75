package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"RiskBoard/internal/handler/api"
	"RiskBoard/internal/service/riskcurve"
	"RiskBoard/internal/usecase"
	"RiskBoard/pkg/cache"
	"RiskBoard/pkg/config"
	xhttp "RiskBoard/pkg/http"
	applogger "RiskBoard/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	dash       *usecase.Dashboard
	quoteCache cache.Service
	risk       *riskcurve.Client
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, dash *usecase.Dashboard, quoteCache cache.Service, risk *riskcurve.Client) *App {
	return &App{
		cfg:        cfg,
		dash:       dash,
		quoteCache: quoteCache,
		risk:       risk,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l, err := applogger.New(&applogger.Config{
		Level:  a.cfg.Log.Level,
		Format: a.cfg.Log.Format,
		Output: a.cfg.Log.Output,
	})
	if err != nil {
		l, _ = applogger.New(&applogger.Config{Level: "info", Format: "console", Output: "stdout"})
	}

	// components are built before the logger exists; attach it now
	a.risk.SetLogger(l)
	a.dash.SetLogger(l)

	handler := api.NewDashboardEchoHandler(l, a.dash, a.cfg.Environment)

	a.httpServer = xhttp.NewServer(handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	if err := a.httpServer.Start(); err != nil {
		l.Error("http server start error", applogger.Error(err))
		return err
	}
	l.Info("dashboard up",
		applogger.String("env", a.cfg.Environment),
		applogger.Int("assets", len(a.cfg.Assets)),
		applogger.Int("port", a.cfg.Server.Port),
	)

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	l.Info("shutdown signal received")
	return a.shutdown(ctx, l)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context, l *applogger.Logger) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		l.Error("http shutdown error", applogger.Error(err))
	}

	if a.quoteCache != nil {
		if err := a.quoteCache.Close(); err != nil {
			l.Warn("cache close error", applogger.Error(err))
		}
	}

	l.Info("shutdown complete")
	return nil
}
