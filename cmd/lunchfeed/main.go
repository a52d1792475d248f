package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/evirtanen/lunchfeed/cache"
	"github.com/evirtanen/lunchfeed/config"
	"github.com/evirtanen/lunchfeed/scrape"
	"github.com/evirtanen/lunchfeed/server"
)

func main() {
	configPath := flag.String("config", "lunchfeed.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	svc := scrape.NewService(scrape.NewClient(cfg.FetchTimeout))
	store := cache.New(svc.FetchAll, cfg.CacheTTL)
	srv := server.New(store)

	log.Printf("INFO: Serving lunch menus on %s (cache TTL %v)", cfg.Listen, cfg.CacheTTL)
	if err := http.ListenAndServe(cfg.Listen, srv.Handler()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
