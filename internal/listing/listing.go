// Package listing serves paginated, category-filtered slices of news.
package listing

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/cache"
	"github.com/seifeddinerezgui/gethrought/internal/model"
	"github.com/seifeddinerezgui/gethrought/internal/querykey"
	"github.com/seifeddinerezgui/gethrought/internal/store"
)

const (
	DefaultPage  = 1
	DefaultLimit = 6

	// NewsPath is the resource path the page cache keys are built from.
	NewsPath = "/api/news"

	cachePrefix = "news:"
)

var ErrInvalidPagination = errors.New("invalid pagination parameters")

// Query selects one page. Category is matched exactly and ignored when empty.
type Query struct {
	Page     int
	Limit    int
	Category string
}

// Key is the query key of q, identical to the one the client data layer computes.
func (q Query) Key() string {
	return querykey.Key(NewsPath, map[string]string{
		"page":     strconv.Itoa(q.Page),
		"limit":    strconv.Itoa(q.Limit),
		"category": q.Category,
	})
}

// Page is one window of the sorted, filtered news.
type Page struct {
	Items      []model.News `json:"items"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"totalPages"`
}

type Service struct {
	store    store.Store
	logger   *zap.Logger
	cache    cache.KV
	cacheTTL time.Duration
}

type Option func(*Service)

// WithCache enables the read-through page cache.
func WithCache(kv cache.KV, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = kv
		s.cacheTTL = ttl
	}
}

func NewService(s store.Store, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &Service{store: s, logger: logger}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// TotalPages is ceil(total/limit), and 0 for a non-positive limit.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}

func offset(page, limit int) int {
	if page-1 > math.MaxInt32/limit {
		return math.MaxInt32
	}
	return (page - 1) * limit
}

// Paginate returns the requested page. A page past the end has no items but
// still carries the total of the filtered set.
func (s *Service) Paginate(ctx context.Context, q Query) (Page, error) {
	if q.Page < 1 || q.Limit < 1 {
		return Page{}, ErrInvalidPagination
	}

	key := cachePrefix + q.Key()
	if page, ok := s.cached(ctx, key); ok {
		return page, nil
	}

	items, total, err := s.store.ListNews(ctx, store.NewsFilter{
		Category: q.Category,
		Offset:   offset(q.Page, q.Limit),
		Limit:    q.Limit,
	})
	if err != nil {
		return Page{}, err
	}
	if items == nil {
		items = []model.News{}
	}

	page := Page{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: TotalPages(total, q.Limit),
	}
	s.remember(ctx, key, page)
	return page, nil
}

func (s *Service) cached(ctx context.Context, key string) (Page, bool) {
	if s.cache == nil {
		return Page{}, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("news cache read failed", zap.String("key", key), zap.Error(err))
		}
		return Page{}, false
	}
	var page Page
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		s.logger.Warn("news cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return Page{}, false
	}
	if page.Items == nil {
		page.Items = []model.News{}
	}
	return page, true
}

func (s *Service) remember(ctx context.Context, key string, page Page) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(page)
	if err != nil {
		s.logger.Warn("failed to encode news page", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		s.logger.Warn("news cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops every cached page. Call it after news rows are inserted.
func (s *Service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	keys, err := s.cache.ScanKeys(ctx, cachePrefix+"*")
	if err != nil {
		return err
	}
	return s.cache.Delete(ctx, keys...)
}
