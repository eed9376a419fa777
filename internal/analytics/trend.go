package analytics

import (
	"sort"
	"strconv"
	"time"

	"github.com/saral-app/saral/internal/billing"
)

// TrendBucket selects the trailing window size for trend points.
type TrendBucket string

const (
	TrendBucketWeek  TrendBucket = "week"
	TrendBucketMonth TrendBucket = "month"
)

// TrendPoint is one bucket of the sales trend.
type TrendPoint struct {
	Label string  `json:"label"`
	Sales float64 `json:"sales"`
}

// SalesTrend returns sales summed over the last n trailing weekly or
// monthly windows, oldest first.
func SalesTrend(bills []billing.Bill, bucket TrendBucket, n int, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		var from, to time.Time
		var label string
		if bucket == TrendBucketWeek {
			from = now.AddDate(0, 0, -7*(i+1))
			to = now.AddDate(0, 0, -7*i)
			label = "Week " + strconv.Itoa(n-i)
		} else {
			from = now.AddDate(0, -(i + 1), 0)
			to = now.AddDate(0, -i, 0)
			label = to.Format("Jan")
		}
		points = append(points, TrendPoint{
			Label: label,
			Sales: TotalSalesInWindow(bills, from, to),
		})
	}
	return points
}

// ForecastPoint pairs actual monthly sales with the predicted value. The
// final point is the forecast itself.
type ForecastPoint struct {
	Month     string  `json:"month"`
	Actual    float64 `json:"actual"`
	Predicted float64 `json:"predicted"`
}

// MovingAverageForecast groups sales by calendar month and appends one
// predicted month equal to the average of the last three. Fewer than three
// months of history yields an empty result; this is a smoothing heuristic,
// not a statistical model.
func MovingAverageForecast(bills []billing.Bill, now time.Time) []ForecastPoint {
	monthly := make(map[string]float64)
	for _, b := range bills {
		monthly[b.Date.Format("2006-01")] += b.Total
	}
	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)
	if len(months) < 3 {
		return []ForecastPoint{}
	}

	points := make([]ForecastPoint, 0, len(months)+1)
	for _, m := range months {
		points = append(points, ForecastPoint{
			Month:     monthLabel(m),
			Actual:    monthly[m],
			Predicted: monthly[m],
		})
	}
	last3 := months[len(months)-3:]
	var avg float64
	for _, m := range last3 {
		avg += monthly[m]
	}
	avg /= 3
	points = append(points, ForecastPoint{
		Month:     now.AddDate(0, 1, 0).Format("Jan"),
		Predicted: avg,
	})
	return points
}

func monthLabel(yyyymm string) string {
	t, err := time.Parse("2006-01", yyyymm)
	if err != nil {
		return yyyymm
	}
	return t.Format("Jan")
}
