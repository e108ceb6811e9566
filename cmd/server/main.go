package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tickerprovider/internal/config"
	"tickerprovider/internal/exchange"
	"tickerprovider/internal/httpx"
	"tickerprovider/internal/ticker"
)

// tickerFetcher is the slice of ticker.Client the handlers need.
type tickerFetcher interface {
	FetchTicker(ctx context.Context, exchangeID, pair string) (any, error)
	Exchanges() []string
}

type tickerResponse struct {
	Exchange string `json:"exchange"`
	Pair     string `json:"pair,omitempty"`
	Ticker   any    `json:"ticker"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfgPath := os.Getenv("CONFIG_FILE")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}

	client := ticker.New(ticker.WithTimeout(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second))
	client.UpdateDefaultOptions(httpx.DefaultsPatch{
		ContentType: &cfg.Request.ContentType,
		UserAgent:   &cfg.Request.UserAgent,
		Insecure:    &cfg.Request.InsecureTLS,
		KeepAlive:   &cfg.Request.KeepAlive,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/exchanges", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"exchanges": client.Exchanges()})
	})
	mux.HandleFunc("/ticker", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		exchangeID := r.URL.Query().Get("exchange")
		pair := r.URL.Query().Get("pair")
		status := writeTicker(w, r.Context(), client, exchangeID, pair)
		logger.Info("ticker", "exchange", exchangeID, "pair", pair, "status", status, "took", time.Since(start))
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serve", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

// writeTicker fetches one ticker and writes the JSON response. It
// returns the HTTP status it wrote.
func writeTicker(w http.ResponseWriter, ctx context.Context, f tickerFetcher, exchangeID, pair string) int {
	if exchangeID == "" {
		return writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing exchange parameter"})
	}
	v, err := f.FetchTicker(ctx, exchangeID, pair)
	if err != nil {
		return writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
	}
	return writeJSON(w, http.StatusOK, tickerResponse{Exchange: exchangeID, Pair: pair, Ticker: v})
}

// statusFor maps failure kinds to response codes: caller mistakes are
// 4xx, upstream trouble is 502.
func statusFor(err error) int {
	var missing *exchange.MissingPairError
	var status *ticker.StatusError
	switch {
	case errors.Is(err, exchange.ErrUnknownExchange):
		return http.StatusNotFound
	case errors.As(err, &missing):
		return http.StatusBadRequest
	case errors.As(err, &status), errors.Is(err, ticker.ErrTransport), errors.Is(err, ticker.ErrEmptyResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) int {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
	return code
}
