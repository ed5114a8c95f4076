package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/auth"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressService interface {
	GetAnnualProgress(ctx context.Context, userID string, q Query) (*AnnualProgress, error)
	Dashboard(ctx context.Context, userID string, year int, month time.Month) (*DashboardMetrics, error)
}

type Handler struct {
	service progressService
	now     func() time.Time
}

// NewHandler uses now for the dashboard defaults; nil means time.Now.
func NewHandler(service progressService, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		service: service,
		now:     now,
	}
}

type annualRequest struct {
	Year       json.Number `json:"year"`
	MetricType string      `json:"metric_type"`
	SportID    *string     `json:"sport_id"`
}

// HandleAnnual serves GET /api/progress/annual?year=&metric_type=&sport_id=
func (h *Handler) HandleAnnual(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.annual")
	defer span.End()

	values := r.URL.Query()
	req := annualRequest{
		Year:       json.Number(values.Get("year")),
		MetricType: values.Get("metric_type"),
		SportID:    pkg.QueryString(values, "sport_id"),
	}

	h.serveAnnual(ctx, w, req)
}

// HandleAnnualJSON serves POST /api/progress/annual with a JSON body.
func (h *Handler) HandleAnnualJSON(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.annual.json")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		pkg.WriteError(w, http.StatusUnsupportedMediaType, pkg.ErrCodeUnsupportedMediaType,
			"Requests must specify application/json as the Content-Type header", nil)
		return
	}

	var req annualRequest
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		log.Errorf("decode progress request: %s", err)
		pkg.WriteError(w, http.StatusBadRequest, pkg.ErrCodeValidation, "Request body contains invalid JSON", nil)
		return
	}

	h.serveAnnual(ctx, w, req)
}

func (h *Handler) serveAnnual(ctx context.Context, w http.ResponseWriter, req annualRequest) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteError(w, http.StatusUnauthorized, pkg.ErrCodeUnauthorized, "authentication required", nil)
		return
	}

	q, verr := parseAnnualRequest(req)
	if verr.HasErrors() {
		pkg.WriteValidationError(w, "Invalid payload", verr)
		return
	}

	result, err := h.service.GetAnnualProgress(ctx, userID, q)
	if err != nil {
		writeServiceError(w, "get annual progress", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, result)
}

func parseAnnualRequest(req annualRequest) (Query, *pkg.ValidationError) {
	var q Query
	verr := &pkg.ValidationError{}

	year, err := strconv.Atoi(strings.TrimSpace(req.Year.String()))
	switch {
	case err != nil:
		verr.Add("year", "year must be an integer")
	case year < MinYear:
		verr.Add("year", "year must be greater than or equal to 2000")
	case year > MaxYear:
		verr.Add("year", "year must be less than or equal to 2100")
	default:
		q.Year = year
	}

	metric, err := fitness.ParseMetric(req.MetricType)
	if err != nil {
		verr.Add("metric_type", "metric_type must be one of distance, time, elevation_gain")
	} else {
		q.Metric = metric
	}

	if req.SportID != nil {
		sportID := strings.TrimSpace(*req.SportID)
		if sportID != "" {
			if _, err := uuid.Parse(sportID); err != nil {
				verr.Add("sport_id", "sport_id must be a valid UUID")
			} else {
				q.SportID = &sportID
			}
		}
	}

	return q, verr
}

// HandleDashboard serves GET /api/dashboard?year=&month=, defaulting to the current UTC month.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.dashboard")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteError(w, http.StatusUnauthorized, pkg.ErrCodeUnauthorized, "authentication required", nil)
		return
	}

	now := h.now().UTC()
	values := r.URL.Query()

	year, err := pkg.QueryInt(values, "year", now.Year())
	if err != nil {
		pkg.WriteError(w, http.StatusBadRequest, pkg.ErrCodeValidation, err.Error(), map[string]any{"field": "year"})
		return
	}
	month, err := pkg.QueryInt(values, "month", int(now.Month()))
	if err != nil {
		pkg.WriteError(w, http.StatusBadRequest, pkg.ErrCodeValidation, err.Error(), map[string]any{"field": "month"})
		return
	}

	dashboard, err := h.service.Dashboard(ctx, userID, year, time.Month(month))
	if err != nil {
		writeServiceError(w, "get dashboard", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, dashboard)
}

func writeServiceError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ErrInvalidQuery) {
		pkg.WriteError(w, http.StatusBadRequest, pkg.ErrCodeValidation, err.Error(), nil)
		return
	}

	log.Errorf("%s: %s", op, err)
	pkg.WriteError(w, http.StatusInternalServerError, pkg.ErrCodeInternal, "An unexpected error occurred", nil)
}
