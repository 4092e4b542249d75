package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"RiskBoard/internal/service/ratelimit"
)

func TestFetchPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/simple/price" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("ids") != "bitcoin,ethereum" {
			t.Errorf("unexpected ids %q", q.Get("ids"))
		}
		if q.Get("vs_currencies") != "usd" {
			t.Errorf("unexpected vs_currencies %q", q.Get("vs_currencies"))
		}
		if q.Get("include_24hr_change") != "true" {
			t.Errorf("unexpected include_24hr_change %q", q.Get("include_24hr_change"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"bitcoin":  {"usd": 50000, "usd_24h_change": 2.1},
			"ethereum": {"usd": 3000, "usd_24h_change": -1.0}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	quotes, err := c.FetchPrices(context.Background(), []string{"bitcoin", "ethereum"})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	btc, ok := quotes["bitcoin"]
	if !ok {
		t.Fatal("expected bitcoin quote")
	}
	if btc.PriceUSD != 50000 || btc.Change24Pct != 2.1 {
		t.Fatalf("unexpected bitcoin quote %+v", btc)
	}
	eth := quotes["ethereum"]
	if eth.PriceUSD != 3000 || eth.Change24Pct != -1.0 {
		t.Fatalf("unexpected ethereum quote %+v", eth)
	}
}

func TestFetchPricesMissingAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"bitcoin": {"usd": 50000, "usd_24h_change": 2.1}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	quotes, err := c.FetchPrices(context.Background(), []string{"bitcoin", "dogecoin"})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if _, ok := quotes["dogecoin"]; ok {
		t.Fatal("expected no quote for unknown asset")
	}
	if _, ok := quotes["bitcoin"]; !ok {
		t.Fatal("expected bitcoin quote to survive")
	}
}

func TestFetchPricesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if _, err := c.FetchPrices(context.Background(), []string{"bitcoin"}); err == nil {
		t.Fatal("expected whole-call failure on 5xx")
	}
}

func TestFetchPricesMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if _, err := c.FetchPrices(context.Background(), []string{"bitcoin"}); err == nil {
		t.Fatal("expected whole-call failure on malformed body")
	}
}

func TestFetchPricesEmptyInput(t *testing.T) {
	c := New("http://unused", time.Second)
	quotes, err := c.FetchPrices(context.Background(), nil)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(quotes) != 0 {
		t.Fatalf("expected empty map, got %v", quotes)
	}
}

func TestFetchPricesRateLimited(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, WithLimiter(ratelimit.New(1, 0.001)))
	if _, err := c.FetchPrices(context.Background(), []string{"bitcoin"}); err != nil {
		t.Fatalf("first call should pass: %v", err)
	}
	if _, err := c.FetchPrices(context.Background(), []string{"bitcoin"}); err == nil {
		t.Fatal("second call should be limited")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", calls)
	}
}
