package listing

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/cache"
	"github.com/seifeddinerezgui/gethrought/internal/model"
	"github.com/seifeddinerezgui/gethrought/internal/seed"
	"github.com/seifeddinerezgui/gethrought/internal/store"
)

func seededService(t *testing.T, opts ...Option) (*Service, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	_, err := seed.Run(context.Background(), s, nil)
	require.NoError(t, err)
	return NewService(s, zap.NewNop(), opts...), s
}

// generatedService holds n news spread over three categories, some sharing a date.
func generatedService(t *testing.T, n int) *Service {
	t.Helper()
	s := store.NewMemoryStore()
	categories := []string{"Fiscalité", "Banque & Assurance", "Audit et Certification"}
	for i := 0; i < n; i++ {
		require.NoError(t, s.CreateNews(context.Background(), &model.News{
			Title:       fmt.Sprintf("news %d", i),
			PublishDate: time.Date(2023, time.January, 1+(i*7)%20, 0, 0, 0, 0, time.UTC),
			Category:    categories[i%len(categories)],
		}))
	}
	return NewService(s, nil)
}

func TestPaginate_SeededFirstPage(t *testing.T) {
	svc, _ := seededService(t)

	page, err := svc.Paginate(context.Background(), Query{Page: 1, Limit: 6})
	require.NoError(t, err)
	assert.Len(t, page.Items, 6)
	assert.Equal(t, int64(6), page.Total)
	assert.Equal(t, 1, page.TotalPages)

	// three articles share 2023-04-10 and keep insertion order
	assert.Equal(t, "Banque & Assurance", page.Items[0].Category)
	assert.Equal(t, "ESG & Développement Durable", page.Items[1].Category)
	assert.Equal(t, "Comptabilité & Normes IFRS", page.Items[2].Category)
	assert.Equal(t, "Fiscalité", page.Items[3].Category)
}

func TestPaginate_SeededCategory(t *testing.T) {
	svc, _ := seededService(t)

	page, err := svc.Paginate(context.Background(), Query{Page: 1, Limit: 1, Category: "Comptabilité & Normes IFRS"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, "Dette versus fonds propres : vers un entre-deux...", page.Items[0].Title)

	second, err := svc.Paginate(context.Background(), Query{Page: 2, Limit: 1, Category: "Comptabilité & Normes IFRS"})
	require.NoError(t, err)
	require.Len(t, second.Items, 1)
	assert.True(t, second.Items[0].PublishDate.Before(page.Items[0].PublishDate))
}

func TestPaginate_PastEnd(t *testing.T) {
	svc, _ := seededService(t)

	page, err := svc.Paginate(context.Background(), Query{Page: 3, Limit: 6})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(6), page.Total)
	assert.Equal(t, 1, page.TotalPages)

	huge, err := svc.Paginate(context.Background(), Query{Page: 1 << 40, Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, huge.Items)
	assert.Equal(t, int64(6), huge.Total)
}

func TestPaginate_Invalid(t *testing.T) {
	svc, _ := seededService(t)

	for _, q := range []Query{{Page: 0, Limit: 6}, {Page: 1, Limit: 0}, {Page: -1, Limit: -1}} {
		_, err := svc.Paginate(context.Background(), q)
		assert.ErrorIs(t, err, ErrInvalidPagination, "query %+v", q)
	}
}

func TestPaginate_LargeLimitEchoed(t *testing.T) {
	svc := generatedService(t, 150)

	page, err := svc.Paginate(context.Background(), Query{Page: 1, Limit: 150})
	require.NoError(t, err)
	assert.Equal(t, 150, page.Limit)
	assert.Equal(t, int64(150), page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Items, 150)

	page, err = svc.Paginate(context.Background(), Query{Page: 2, Limit: math.MaxInt})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, page.Limit)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestPaginate_Properties(t *testing.T) {
	ctx := context.Background()
	svc := generatedService(t, 23)

	for _, category := range []string{"", "Fiscalité", "Banque & Assurance", "Inconnue"} {
		for _, limit := range []int{1, 4, 6, 23, 50} {
			first, err := svc.Paginate(ctx, Query{Page: 1, Limit: limit, Category: category})
			require.NoError(t, err)
			total := first.Total
			assert.Equal(t, TotalPages(total, limit), first.TotalPages)

			var all []model.News
			seen := map[uint]bool{}
			for p := 1; p <= first.TotalPages+1; p++ {
				page, err := svc.Paginate(ctx, Query{Page: p, Limit: limit, Category: category})
				require.NoError(t, err)
				assert.Equal(t, total, page.Total)

				want := min(int64(limit), max(0, total-int64((p-1)*limit)))
				assert.Len(t, page.Items, int(want), "category %q limit %d page %d", category, limit, p)

				for i, n := range page.Items {
					if category != "" {
						assert.Equal(t, category, n.Category)
					}
					if i > 0 {
						assert.False(t, n.PublishDate.After(page.Items[i-1].PublishDate))
					}
					assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
					seen[n.ID] = true
				}
				all = append(all, page.Items...)
			}

			assert.Len(t, all, int(total))
			for i := 1; i < len(all); i++ {
				prev, cur := all[i-1], all[i]
				assert.False(t, cur.PublishDate.After(prev.PublishDate))
				if cur.PublishDate.Equal(prev.PublishDate) {
					assert.Greater(t, cur.ID, prev.ID)
				}
			}
		}
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 6))
	assert.Equal(t, 1, TotalPages(6, 6))
	assert.Equal(t, 2, TotalPages(7, 6))
	assert.Equal(t, 23, TotalPages(23, 1))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestQueryKey(t *testing.T) {
	assert.Equal(t, "/api/news?limit=6&page=1", Query{Page: 1, Limit: 6}.Key())
	assert.Equal(t, "/api/news?category=Fiscalit%C3%A9&limit=6&page=2", Query{Page: 2, Limit: 6, Category: "Fiscalité"}.Key())
}

func TestPaginate_Cache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	kv, err := cache.Dial(ctx, mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	svc, s := seededService(t, WithCache(kv, time.Minute))

	first, err := svc.Paginate(ctx, Query{Page: 1, Limit: 6})
	require.NoError(t, err)
	assert.True(t, mr.Exists("news:/api/news?limit=6&page=1"))

	// a new row is invisible until the cache is invalidated
	require.NoError(t, s.CreateNews(ctx, &model.News{Title: "fresh", PublishDate: time.Now().UTC(), Category: "Fiscalité"}))
	cached, err := svc.Paginate(ctx, Query{Page: 1, Limit: 6})
	require.NoError(t, err)
	assert.Equal(t, first.Total, cached.Total)
	assert.Equal(t, first.Items[0].Title, cached.Items[0].Title)

	require.NoError(t, svc.Invalidate(ctx))
	fresh, err := svc.Paginate(ctx, Query{Page: 1, Limit: 6})
	require.NoError(t, err)
	assert.Equal(t, int64(7), fresh.Total)
	assert.Equal(t, "fresh", fresh.Items[0].Title)
}

func TestPaginate_CacheDownFallsThrough(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	kv, err := cache.Dial(ctx, mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	svc, _ := seededService(t, WithCache(kv, time.Minute))
	mr.SetError("server unavailable")

	page, err := svc.Paginate(ctx, Query{Page: 1, Limit: 6})
	require.NoError(t, err)
	assert.Len(t, page.Items, 6)
}

func TestPaginate_CorruptCacheEntry(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	kv, err := cache.Dial(ctx, mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	svc, _ := seededService(t, WithCache(kv, time.Minute))
	require.NoError(t, mr.Set("news:/api/news?limit=6&page=1", "{not json"))

	page, err := svc.Paginate(ctx, Query{Page: 1, Limit: 6})
	require.NoError(t, err)
	assert.Len(t, page.Items, 6)
}
