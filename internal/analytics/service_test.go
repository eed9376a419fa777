package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saral-app/saral/internal/billing"
	"github.com/saral-app/saral/internal/catalog"
)

type stubReader struct {
	products []catalog.Product
	bills    []billing.Bill
}

func (s *stubReader) Products() []catalog.Product { return s.products }
func (s *stubReader) Bills() []billing.Bill       { return s.bills }

func newTestService(t *testing.T, reader *stubReader) (*Service, *Cache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := NewCache(client, time.Minute)
	return NewService(reader, cache), cache
}

func TestServiceSummary(t *testing.T) {
	reader := &stubReader{
		products: []catalog.Product{p1},
		bills: []billing.Bill{
			billOn(time.Now(), billing.BillItem{ProductID: "p1", Quantity: 3, Price: 100}),
		},
	}
	svc, _ := newTestService(t, reader)

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 300.0, got.TotalSales)
	assert.InDelta(t, 40.0, got.NetProfitMargin, 1e-9)
	assert.Equal(t, 1, got.TotalOrders)
	assert.Equal(t, 300.0, got.AverageOrderValue)
}

func TestServiceSummaryServesCachedValue(t *testing.T) {
	reader := &stubReader{
		bills: []billing.Bill{
			billOn(time.Now(), billing.BillItem{ProductID: "p1", Quantity: 1, Price: 100}),
		},
	}
	svc, _ := newTestService(t, reader)
	ctx := context.Background()

	first, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 100.0, first.TotalSales)

	// Mutate state behind the cache: the stale figure should survive until
	// the version is bumped.
	reader.bills = append(reader.bills,
		billOn(time.Now(), billing.BillItem{ProductID: "p1", Quantity: 2, Price: 100}))

	second, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, second.TotalSales)
}

func TestServiceSummaryBumpInvalidates(t *testing.T) {
	reader := &stubReader{
		bills: []billing.Bill{
			billOn(time.Now(), billing.BillItem{ProductID: "p1", Quantity: 1, Price: 100}),
		},
	}
	svc, cache := newTestService(t, reader)
	ctx := context.Background()

	first, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 100.0, first.TotalSales)

	reader.bills = append(reader.bills,
		billOn(time.Now(), billing.BillItem{ProductID: "p1", Quantity: 2, Price: 100}))
	require.NoError(t, cache.Bump(ctx))

	second, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 300.0, second.TotalSales)
}

func TestServiceWorksWithoutCache(t *testing.T) {
	reader := &stubReader{
		products: []catalog.Product{p1, p2},
		bills: []billing.Bill{
			billOn(time.Now(), billing.BillItem{ProductID: "p2", Quantity: 2, Price: 50}),
		},
	}
	svc := NewService(reader, nil)
	ctx := context.Background()

	got, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.TotalSales)

	top, ok, err := svc.TopProduct(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "p2", top.ProductID)

	val, err := svc.Valuation(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1100.0, val)
}

func TestServiceTopProductEmpty(t *testing.T) {
	svc, _ := newTestService(t, &stubReader{})

	_, ok, err := svc.TopProduct(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
