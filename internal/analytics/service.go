package analytics

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/saral-app/saral/internal/billing"
	"github.com/saral-app/saral/internal/catalog"
)

// StateReader supplies the snapshots the aggregators run over.
type StateReader interface {
	Products() []catalog.Product
	Bills() []billing.Bill
}

// Service exposes the aggregators with cache-aware lookups. The cache may
// be nil; reads then always recompute.
type Service struct {
	reader StateReader
	cache  *Cache
	now    func() time.Time
}

// NewService constructs the analytics service.
func NewService(reader StateReader, cache *Cache) *Service {
	return &Service{reader: reader, cache: cache, now: time.Now}
}

func (s *Service) cached(ctx context.Context, dest interface{}, loader func(context.Context) (interface{}, error), parts ...string) error {
	if s.cache == nil {
		value, err := loader(ctx)
		if err != nil {
			return err
		}
		return assign(dest, value)
	}
	key, err := s.cache.BuildKey(ctx, parts...)
	if err != nil {
		return err
	}
	return s.cache.FetchJSON(ctx, key, dest, loader)
}

// Summary resolves the headline dashboard figures.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	loader := func(ctx context.Context) (interface{}, error) {
		bills := s.reader.Bills()
		return Summary{
			TotalSales:        TotalSales(bills),
			NetProfitMargin:   NetProfitMargin(bills, s.reader.Products()),
			TotalOrders:       len(bills),
			AverageOrderValue: AverageOrderValue(bills),
		}, nil
	}
	var out Summary
	err := s.cached(ctx, &out, loader, "analytics", "summary")
	return out, err
}

// SalesInWindow sums the bill totals inside [from, to] inclusive.
func (s *Service) SalesInWindow(ctx context.Context, from, to time.Time) (float64, error) {
	loader := func(ctx context.Context) (interface{}, error) {
		return TotalSalesInWindow(s.reader.Bills(), from, to), nil
	}
	var out float64
	err := s.cached(ctx, &out, loader,
		"analytics", "sales", from.Format("2006-01-02"), to.Format("2006-01-02"))
	return out, err
}

// TopProduct resolves the highest-revenue product, if any sales exist.
func (s *Service) TopProduct(ctx context.Context) (TopProduct, bool, error) {
	type cached struct {
		Top TopProduct `json:"top"`
		OK  bool       `json:"ok"`
	}
	loader := func(ctx context.Context) (interface{}, error) {
		top, ok := TopProductByRevenue(s.reader.Bills(), s.reader.Products())
		return cached{Top: top, OK: ok}, nil
	}
	var out cached
	err := s.cached(ctx, &out, loader, "analytics", "top_product")
	return out.Top, out.OK, err
}

// Valuation returns the shelf value of current inventory.
func (s *Service) Valuation(ctx context.Context) (float64, error) {
	loader := func(ctx context.Context) (interface{}, error) {
		return InventoryValuation(s.reader.Products()), nil
	}
	var out float64
	err := s.cached(ctx, &out, loader, "analytics", "valuation")
	return out, err
}

// Trend returns sales summed over the last n trailing buckets.
func (s *Service) Trend(ctx context.Context, bucket TrendBucket, n int) ([]TrendPoint, error) {
	loader := func(ctx context.Context) (interface{}, error) {
		return SalesTrend(s.reader.Bills(), bucket, n, s.now()), nil
	}
	var out []TrendPoint
	err := s.cached(ctx, &out, loader, "analytics", "trend", string(bucket), strconv.Itoa(n))
	return out, err
}

// Forecast returns the moving-average demand forecast.
func (s *Service) Forecast(ctx context.Context) ([]ForecastPoint, error) {
	loader := func(ctx context.Context) (interface{}, error) {
		return MovingAverageForecast(s.reader.Bills(), s.now()), nil
	}
	var out []ForecastPoint
	err := s.cached(ctx, &out, loader, "analytics", "forecast")
	return out, err
}

// assign copies value into dest through JSON, mirroring the cache path so
// both branches produce identical shapes.
func assign(dest, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
