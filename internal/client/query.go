package client

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/seifeddinerezgui/gethrought/internal/querykey"
)

// Fetcher performs one GET and returns the raw JSON body.
type Fetcher func(ctx context.Context, path string, params map[string]string) (json.RawMessage, error)

// Result is the outcome of a query.
type Result struct {
	Data json.RawMessage
	Err  error
}

type entry struct {
	data      json.RawMessage
	fetchedAt time.Time
}

// QueryClient caches successful GET responses by query key for its lifetime.
// Concurrent queries for one key share a single request. Errors are never cached.
type QueryClient struct {
	fetch     Fetcher
	staleTime time.Duration
	now       func() time.Time

	mu         sync.Mutex
	entries    map[string]entry
	generation uint64
	group      singleflight.Group
}

// NewQueryClient wraps fetch. A zero staleTime keeps entries until invalidated.
func NewQueryClient(fetch Fetcher, staleTime time.Duration) *QueryClient {
	return &QueryClient{
		fetch:     fetch,
		staleTime: staleTime,
		now:       time.Now,
		entries:   make(map[string]entry),
	}
}

// Cached returns the fresh entry for key, if any.
func (q *QueryClient) Cached(key string) (json.RawMessage, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lookup(key)
}

func (q *QueryClient) lookup(key string) (json.RawMessage, bool) {
	e, ok := q.entries[key]
	if !ok {
		return nil, false
	}
	if q.staleTime > 0 && q.now().Sub(e.fetchedAt) >= q.staleTime {
		delete(q.entries, key)
		return nil, false
	}
	return e.data, true
}

// Query returns the cached data for (path, params) or fetches it.
// ctx only bounds the wait of this caller; a shared fetch keeps running for the others.
func (q *QueryClient) Query(ctx context.Context, path string, params map[string]string) Result {
	key := querykey.Key(path, params)
	if data, ok := q.Cached(key); ok {
		return Result{Data: data}
	}

	ch := q.group.DoChan(key, func() (interface{}, error) {
		q.mu.Lock()
		gen := q.generation
		q.mu.Unlock()

		data, err := q.fetch(context.WithoutCancel(ctx), path, params)
		if err != nil {
			return nil, err
		}

		q.mu.Lock()
		// an Invalidate during the fetch means the response may already be outdated
		if gen == q.generation {
			q.entries[key] = entry{data: data, fetchedAt: q.now()}
		}
		q.mu.Unlock()
		return data, nil
	})

	select {
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return Result{Err: res.Err}
		}
		return Result{Data: res.Val.(json.RawMessage)}
	}
}

// Invalidate drops the cached keys of pathPrefix and of the paths below it, whatever
// their parameters. An empty prefix clears the cache.
func (q *QueryClient) Invalidate(pathPrefix string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.generation++
	pathPrefix = strings.TrimRight(pathPrefix, "/")
	for key := range q.entries {
		if underPath(key, pathPrefix) {
			delete(q.entries, key)
		}
	}
}

func underPath(key, path string) bool {
	if path == "" || key == path {
		return true
	}
	return strings.HasPrefix(key, path+"/") || strings.HasPrefix(key, path+"?")
}
