package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/goals"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/sports"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/metrics"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

const (
	MinYear = 2000
	MaxYear = 2100
)

var ErrInvalidQuery = errors.New("invalid progress query")

type goalsReader interface {
	Latest(ctx context.Context, userID string, year int, metric fitness.Metric, scope fitness.Scope, sportID *string) (*fitness.Goal, error)
	ListForYear(ctx context.Context, userID string, year int) ([]fitness.Goal, error)
}

type activitiesReader interface {
	ListForYear(ctx context.Context, userID string, year int, sportCode *string) ([]fitness.Activity, error)
}

type sportsCatalog interface {
	Get(ctx context.Context, id string) (*fitness.Sport, error)
	List(ctx context.Context) ([]fitness.Sport, error)
}

type Query struct {
	Year    int
	Metric  fitness.Metric
	SportID *string
}

func (q Query) Validate() error {
	if q.Year < MinYear || q.Year > MaxYear {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidQuery, MinYear, MaxYear)
	}
	if !q.Metric.IsValid() {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, fitness.ErrInvalidMetric)
	}
	return nil
}

func (q Query) Scope() fitness.Scope {
	if q.SportID != nil && *q.SportID != "" {
		return fitness.ScopePerSport
	}
	return fitness.ScopeGlobal
}

type AnnualProgress struct {
	Year        int            `json:"year"`
	MetricType  fitness.Metric `json:"metric_type"`
	ScopeType   fitness.Scope  `json:"scope_type"`
	SportID     *string        `json:"sport_id"`
	TargetValue float64        `json:"target_value"`
	Series      []SeriesPoint  `json:"series"`
}

type Service struct {
	goals          goalsReader
	activities     activitiesReader
	sports         sportsCatalog
	cache          *ResultCache
	metricsManager *metrics.Manager
	now            func() time.Time
}

type ServiceParams struct {
	Goals      goalsReader
	Activities activitiesReader
	Sports     sportsCatalog
	// optional
	Cache          *ResultCache
	MetricsManager *metrics.Manager
	Now            func() time.Time
}

func NewService(params ServiceParams) *Service {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		goals:          params.Goals,
		activities:     params.Activities,
		sports:         params.Sports,
		cache:          params.Cache,
		metricsManager: params.MetricsManager,
		now:            now,
	}
}

func (s *Service) GetAnnualProgress(ctx context.Context, userID string, q Query) (_ *AnnualProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.annual")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.Int("year", q.Year),
		attribute.String("metric", q.Metric.String()),
	)

	if err := q.Validate(); err != nil {
		return nil, err
	}

	today := s.now().UTC()
	var cacheKey string
	if s.cache != nil {
		cacheKey = s.cache.Key(userID, q, today)
		if cached, ok := s.cachedResult(cacheKey); ok {
			return cached, nil
		}
	}

	scope := q.Scope()
	var sportID *string
	if scope == fitness.ScopePerSport {
		sportID = q.SportID
	}

	target := s.resolveGoalTarget(ctx, userID, q.Year, q.Metric, scope, sportID)

	var sportCode *string
	if sportID != nil {
		sport, err := s.sports.Get(ctx, *sportID)
		if err != nil {
			if errors.Is(err, sports.ErrSportNotFound) {
				return nil, fmt.Errorf("%w: sport %s does not exist: %w", ErrInvalidQuery, *sportID, err)
			}
			return nil, fmt.Errorf("get sport %s: %w", *sportID, err)
		}
		code := normalizeCode(sport.Code)
		sportCode = &code
	}

	activities, err := s.activities.ListForYear(ctx, userID, q.Year, sportCode)
	if err != nil {
		return nil, fmt.Errorf("list activities for %d: %w", q.Year, err)
	}

	buildStart := time.Now()
	series := BuildCumulativeSeries(activities, q.Metric, q.Year, today)
	if s.metricsManager != nil {
		s.metricsManager.HistogramSeriesBuild.Observe(time.Since(buildStart).Seconds())
	}

	result := &AnnualProgress{
		Year:        q.Year,
		MetricType:  q.Metric,
		ScopeType:   scope,
		SportID:     sportID,
		TargetValue: NormalizeTargetValue(q.Metric, target),
		Series:      series,
	}

	if s.cache != nil {
		s.cache.Set(cacheKey, result)
	}

	return result, nil
}

func (s *Service) cachedResult(key string) (*AnnualProgress, bool) {
	cached, ok := s.cache.Get(key)
	if s.metricsManager != nil {
		result := "miss"
		if ok {
			result = "hit"
		}
		s.metricsManager.CounterProgressCache.WithLabelValues(result).Inc()
	}
	return cached, ok
}

// resolveGoalTarget returns the raw target of the newest matching goal, 0 when there is none.
// Lookup failures are logged and treated as "no goal" so the chart still renders.
func (s *Service) resolveGoalTarget(
	ctx context.Context,
	userID string,
	year int,
	metric fitness.Metric,
	scope fitness.Scope,
	sportID *string,
) float64 {
	goal, err := s.goals.Latest(ctx, userID, year, metric, scope, sportID)
	if err != nil {
		if !errors.Is(err, goals.ErrGoalNotFound) {
			log.Errorf("resolve goal target for user %s: %s", userID, err)
		}
		return 0
	}
	return goal.TargetValue
}

func (s *Service) Dashboard(ctx context.Context, userID string, year int, month time.Month) (_ *DashboardMetrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if year < MinYear || year > MaxYear {
		return nil, fmt.Errorf("%w: year must be between %d and %d", ErrInvalidQuery, MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidQuery)
	}

	yearGoals, err := s.goals.ListForYear(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	activities, err := s.activities.ListForYear(ctx, userID, year, nil)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	catalog, err := s.sports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}

	dashboard := BuildMetrics(yearGoals, activities, catalog, year, month)
	return &dashboard, nil
}

func (s *Service) InvalidateUser(userID string) {
	if s.cache != nil {
		s.cache.InvalidateUser(userID)
	}
}
