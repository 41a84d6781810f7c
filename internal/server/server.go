package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/cache"
	"github.com/seifeddinerezgui/gethrought/internal/config"
	"github.com/seifeddinerezgui/gethrought/internal/database"
	"github.com/seifeddinerezgui/gethrought/internal/listing"
	"github.com/seifeddinerezgui/gethrought/internal/seed"
	"github.com/seifeddinerezgui/gethrought/internal/store"
)

// MyServer holds everything the handlers share.
type MyServer struct {
	Config config.Config
	Logger *zap.Logger
	Store  store.Store
	// DB is nil with the memory driver.
	DB *database.DBinstanceStruct
	// Cache is nil when no Redis address is configured or it was unreachable at start.
	Cache   cache.KV
	Listing *listing.Service

	closers []func() error
}

// New opens the configured store and cache, loads the sample data and the admin account,
// and returns a server ready to register routes.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*MyServer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &MyServer{Config: cfg, Logger: logger}

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		s.Store = store.NewMemoryStore()
		logger.Warn("using in-memory store, data is lost on restart")
	default:
		db, err := database.NewDBInstance(cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("database failed to initialize: %w", err)
		}
		s.DB = db
		s.Store = store.NewGormStore(db.DB)
		s.closers = append(s.closers, db.Close)
	}

	var opts []listing.Option
	if cfg.Redis.Addr != "" {
		kv, err := cache.Dial(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("redis unreachable, news cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		} else {
			s.Cache = kv
			s.closers = append(s.closers, kv.Close)
			opts = append(opts, listing.WithCache(kv, cfg.NewsCacheTTL))
		}
	}
	s.Listing = listing.NewService(s.Store, logger, opts...)

	if cfg.SeedOnStart {
		res, err := seed.Run(ctx, s.Store, logger)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to seed: %w", err)
		}
		if res.News > 0 {
			if err := s.Listing.Invalidate(ctx); err != nil {
				logger.Warn("failed to invalidate news cache", zap.Error(err))
			}
		}
	}

	created, err := seed.EnsureAdmin(ctx, s.Store, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	if created {
		logger.Info("admin account created", zap.String("username", cfg.AdminUsername))
	}

	return s, nil
}

// NewServer construct new http.Server serving the registered routes
func (s *MyServer) NewServer() *http.Server {
	// Declare Server config
	return &http.Server{
		Addr:              s.Config.Addr(),
		Handler:           s.RegisterRoutes(),
		IdleTimeout:       time.Minute,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
}

// Health reports the state of the store and of the cache.
func (s *MyServer) Health(ctx context.Context) map[string]string {
	var stats map[string]string
	if s.DB != nil {
		stats = s.DB.Health()
	} else {
		stats = map[string]string{"status": "up", "message": "It's healthy"}
	}
	stats["store"] = s.Config.StoreDriver

	switch kv := s.Cache.(type) {
	case nil:
		stats["cache"] = "disabled"
	case interface{ Ping(context.Context) error }:
		if err := kv.Ping(ctx); err != nil {
			stats["cache"] = "down"
		} else {
			stats["cache"] = "up"
		}
	default:
		stats["cache"] = "up"
	}
	return stats
}

// Close releases the store and cache connections.
func (s *MyServer) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
