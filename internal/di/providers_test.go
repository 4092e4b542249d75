package di

import (
	"testing"

	"RiskBoard/pkg/config"
)

func TestInitializeApp(t *testing.T) {
	cfg := &config.Config{}
	cfg.Environment = "test"
	cfg.Auth.SigningSecret = "di-test-secret"
	cfg.Market.BaseURL = "http://localhost:0"
	cfg.Cache.Backend = "memory"
	cfg.Assets = []config.AssetEntry{{ID: "bitcoin", Name: "Bitcoin"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}

	app, err := InitializeApp(cfg)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if app == nil {
		t.Fatal("expected an application instance")
	}
}
