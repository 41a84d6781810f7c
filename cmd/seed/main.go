// Command seed loads the sample solutions, offices, jobs and news into an empty database.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/seifeddinerezgui/gethrought/internal/cache"
	"github.com/seifeddinerezgui/gethrought/internal/config"
	"github.com/seifeddinerezgui/gethrought/internal/database"
	"github.com/seifeddinerezgui/gethrought/internal/listing"
	"github.com/seifeddinerezgui/gethrought/internal/logger"
	"github.com/seifeddinerezgui/gethrought/internal/seed"
	"github.com/seifeddinerezgui/gethrought/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if cfg.StoreDriver != config.StoreDriverPostgres {
		log.Fatalf("seed needs STORE_DRIVER=%s, the memory store is seeded on start", config.StoreDriverPostgres)
	}

	zl, err := logger.NewLogger(cfg.LogLevel, "console", "gethrought-seed")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.NewDBInstance(cfg.DB, zl)
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	defer func() { _ = db.Close() }()

	s := store.NewGormStore(db.DB)
	res, err := seed.Run(ctx, s, zl)
	if err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	if res.Empty() {
		fmt.Println("Database already holds data, nothing inserted.")
		return
	}
	fmt.Printf("Inserted %d solutions, %d locations, %d jobs, %d news.\n",
		res.Solutions, res.Locations, res.Jobs, res.News)

	if res.News == 0 || cfg.Redis.Addr == "" {
		return
	}
	kv, err := cache.Dial(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		fmt.Printf("Could not reach redis to clear cached news pages: %v\n", err)
		return
	}
	defer func() { _ = kv.Close() }()
	if err := listing.NewService(s, zl, listing.WithCache(kv, cfg.NewsCacheTTL)).Invalidate(ctx); err != nil {
		fmt.Printf("Failed to clear cached news pages: %v\n", err)
	}
}
