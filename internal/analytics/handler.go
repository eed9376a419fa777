package analytics

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/saral-app/saral/internal/shared"
)

// Handler wires HTTP endpoints for the analytics views.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers analytics routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/analytics/summary", h.Summary)
	r.Get("/analytics/sales", h.Sales)
	r.Get("/analytics/top-product", h.TopProduct)
	r.Get("/analytics/valuation", h.Valuation)
	r.Get("/analytics/trend", h.Trend)
	r.Get("/analytics/forecast", h.Forecast)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.fail(w, "summary", err)
		return
	}
	shared.JSON(w, http.StatusOK, summary)
}

// Sales accepts either from/to dates (2006-01-02) or a named trailing
// window (week, month, year). With neither it returns all-time sales.
func (h *Handler) Sales(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	from := time.Time{}
	to := now

	if window := r.URL.Query().Get("window"); window != "" {
		switch window {
		case "week":
			from = now.AddDate(0, 0, -7)
		case "month":
			from = now.AddDate(0, -1, 0)
		case "year":
			from = now.AddDate(0, -12, 0)
		default:
			shared.JSONError(w, http.StatusBadRequest, "invalid_window")
			return
		}
	} else {
		var err error
		if v := r.URL.Query().Get("from"); v != "" {
			if from, err = time.Parse("2006-01-02", v); err != nil {
				shared.JSONError(w, http.StatusBadRequest, "invalid_from")
				return
			}
		}
		if v := r.URL.Query().Get("to"); v != "" {
			if to, err = time.Parse("2006-01-02", v); err != nil {
				shared.JSONError(w, http.StatusBadRequest, "invalid_to")
				return
			}
			// Make "to" inclusive of the whole day.
			to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
	}

	total, err := h.service.SalesInWindow(r.Context(), from, to)
	if err != nil {
		h.fail(w, "sales window", err)
		return
	}
	shared.JSON(w, http.StatusOK, map[string]interface{}{
		"total":           total,
		"total_formatted": shared.FormatINR(total),
	})
}

func (h *Handler) TopProduct(w http.ResponseWriter, r *http.Request) {
	top, ok, err := h.service.TopProduct(r.Context())
	if err != nil {
		h.fail(w, "top product", err)
		return
	}
	if !ok {
		shared.JSON(w, http.StatusOK, map[string]string{"product": "none"})
		return
	}
	shared.JSON(w, http.StatusOK, top)
}

func (h *Handler) Valuation(w http.ResponseWriter, r *http.Request) {
	value, err := h.service.Valuation(r.Context())
	if err != nil {
		h.fail(w, "valuation", err)
		return
	}
	shared.JSON(w, http.StatusOK, map[string]interface{}{
		"valuation":           value,
		"valuation_formatted": shared.FormatINR(value),
	})
}

func (h *Handler) Trend(w http.ResponseWriter, r *http.Request) {
	bucket := TrendBucket(r.URL.Query().Get("bucket"))
	if bucket == "" {
		bucket = TrendBucketWeek
	}
	if bucket != TrendBucketWeek && bucket != TrendBucketMonth {
		shared.JSONError(w, http.StatusBadRequest, "invalid_bucket")
		return
	}
	points, err := h.service.Trend(r.Context(), bucket, 4)
	if err != nil {
		h.fail(w, "trend", err)
		return
	}
	shared.JSON(w, http.StatusOK, points)
}

func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	points, err := h.service.Forecast(r.Context())
	if err != nil {
		h.fail(w, "forecast", err)
		return
	}
	shared.JSON(w, http.StatusOK, points)
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op, slog.Any("error", err))
	shared.JSONError(w, http.StatusInternalServerError, "internal_error")
}
