package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"tickerprovider/internal/config"
	"tickerprovider/internal/httpx"
	"tickerprovider/internal/ticker"
)

func main() {
	var exchangeID string
	var pair string
	var all bool
	var urlOnly bool
	var timeout int
	var configPath string

	flag.StringVar(&exchangeID, "exchange", getenv("EXCHANGE", ""), "exchange id (btce, bter, poloniex, btcchina, okcoin, bitcoinaverage, mintpal)")
	flag.StringVar(&pair, "pair", getenv("PAIR", ""), "trading pair, e.g. btc_usd (required by some exchanges)")
	flag.BoolVar(&all, "all", false, "fetch every registered exchange concurrently")
	flag.BoolVar(&urlOnly, "url", false, "print the request URL instead of fetching")
	flag.IntVar(&timeout, "timeout", getenvInt("REQUEST_TIMEOUT_SEC", 15), "request timeout seconds")
	flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if timeout != 0 {
		cfg.Server.RequestTimeoutSec = timeout
	}

	client := ticker.New(ticker.WithTimeout(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second))
	client.UpdateDefaultOptions(httpx.DefaultsPatch{
		ContentType: &cfg.Request.ContentType,
		UserAgent:   &cfg.Request.UserAgent,
		Insecure:    &cfg.Request.InsecureTLS,
		KeepAlive:   &cfg.Request.KeepAlive,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.RequestTimeoutSec)*time.Second)
	defer cancel()

	switch {
	case all:
		fetchAll(ctx, client, pair)
	case exchangeID == "":
		log.Fatal("no exchange given; use -exchange or -all")
	case urlOnly:
		u, err := client.BuildURL(exchangeID, pair)
		if err != nil {
			log.Fatalf("%s: %v", exchangeID, err)
		}
		fmt.Println(u)
	default:
		v, err := client.FetchTicker(ctx, exchangeID, pair)
		if err != nil {
			log.Fatalf("%s: %v", exchangeID, err)
		}
		printJSON(map[string]any{exchangeID: v})
	}
}

// fetchAll fans out one FetchTicker per registered exchange and prints
// whatever came back. Individual failures are logged, not fatal.
func fetchAll(ctx context.Context, client *ticker.Client, pair string) {
	ids := client.Exchanges()
	out := make(map[string]any, len(ids))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			v, err := client.FetchTicker(ctx, id, pair)
			if err != nil {
				log.Printf("%s error: %v", id, err)
				return nil
			}
			mu.Lock()
			out[id] = v
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if len(out) == 0 {
		log.Fatal("no tickers received")
	}
	printJSON(out)
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var x int
		_, _ = fmt.Sscanf(v, "%d", &x)
		if x != 0 {
			return x
		}
	}
	return def
}
