package activities

import (
	"context"
	"fmt"
	"strings"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/events"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/metrics"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=activities_test

type activitiesRepo interface {
	List(ctx context.Context, userID string, params ListParams) ([]fitness.Activity, int, error)
	BulkInsert(ctx context.Context, batch []fitness.Activity) (int, error)
}

type sportsCatalog interface {
	List(ctx context.Context) ([]fitness.Sport, error)
}

type progressInvalidator interface {
	InvalidateUser(userID string)
}

type eventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type timezoneResolver interface {
	TimezoneForIP(ctx context.Context, ip string) (string, error)
}

// ListItem is a stored activity together with its display form.
type ListItem struct {
	fitness.Activity
	Display ViewModel `json:"display"`
}

type GenerateResult struct {
	CreatedCount int `json:"created_count"`
}

type ServiceParams struct {
	Repo           activitiesRepo
	Sports         sportsCatalog
	Progress       progressInvalidator
	Publisher      eventPublisher
	Timezones      timezoneResolver
	Generator      *Generator
	MetricsManager *metrics.Manager
}

type Service struct {
	repo           activitiesRepo
	sports         sportsCatalog
	progress       progressInvalidator
	publisher      eventPublisher
	timezones      timezoneResolver
	generator      *Generator
	metricsManager *metrics.Manager
}

func NewService(params ServiceParams) *Service {
	generator := params.Generator
	if generator == nil {
		generator = NewGenerator(0, nil)
	}
	return &Service{
		repo:           params.Repo,
		sports:         params.Sports,
		progress:       params.Progress,
		publisher:      params.Publisher,
		timezones:      params.Timezones,
		generator:      generator,
		metricsManager: params.MetricsManager,
	}
}

func (s *Service) List(ctx context.Context, userID string, params ListParams) (_ *pkg.Paginated[ListItem], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	activities, total, err := s.repo.List(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	items := make([]ListItem, 0, len(activities))
	for _, a := range activities {
		items = append(items, ListItem{
			Activity: a,
			Display:  ToViewModel(a),
		})
	}

	return &pkg.Paginated[ListItem]{
		Data:  items,
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
	}, nil
}

// Generate inserts a batch of synthetic activities for userID. Requested primary
// sports must exist in the sports catalog. clientIP is used to guess the timezone
// when the overrides do not name one.
func (s *Service) Generate(ctx context.Context, userID string, overrides Overrides, clientIP string) (_ *GenerateResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	catalog, err := s.sports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	if len(catalog) == 0 {
		verr := &pkg.ValidationError{}
		verr.Add("primary_sports", "No sports available. Please add sports first.")
		return nil, verr
	}

	profiles := make(map[string]fitness.SportProfile)
	codes := make(map[string]bool)
	for _, sport := range catalog {
		code := strings.ToLower(sport.Code)
		codes[code] = true
		if sport.Profile != nil {
			profiles[code] = *sport.Profile
		}
	}

	if len(overrides.PrimarySports) > 0 {
		selected := make([]string, 0, len(overrides.PrimarySports))
		for _, requested := range overrides.PrimarySports {
			if code := strings.ToLower(strings.TrimSpace(requested)); codes[code] {
				selected = append(selected, code)
			}
		}
		if len(selected) == 0 {
			verr := &pkg.ValidationError{}
			verr.Add("primary_sports", "None of the requested sports exist in the database")
			return nil, verr
		}
		overrides.PrimarySports = selected
	}

	if overrides.Timezone == "" && s.timezones != nil && clientIP != "" {
		tz, err := s.timezones.TimezoneForIP(ctx, clientIP)
		if err != nil {
			log.Warnf("resolve timezone for %s: %s", clientIP, err)
		} else {
			overrides.Timezone = tz
		}
	}

	generated, err := s.generator.Generate(userID, overrides, profiles)
	if err != nil {
		return nil, fmt.Errorf("generate activities: %w", err)
	}

	inserted, err := s.repo.BulkInsert(ctx, generated)
	if err != nil {
		return nil, fmt.Errorf("store generated activities: %w", err)
	}
	span.SetAttributes(attribute.Int("activities.inserted", inserted))

	s.progress.InvalidateUser(userID)
	if s.metricsManager != nil {
		s.metricsManager.CounterActivitiesGenerated.Add(float64(inserted))
	}

	result := &GenerateResult{CreatedCount: inserted}
	if err := s.publisher.Publish(ctx, events.NewEvent(events.TypeActivitiesGenerated, userID, "", result)); err != nil {
		log.Errorf("publish %s for user %s: %s", events.TypeActivitiesGenerated, userID, err)
	}

	log.Debugf("generated %d activities for user %s", inserted, userID)
	return result, nil
}
