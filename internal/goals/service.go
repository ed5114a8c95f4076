package goals

import (
	"context"
	"fmt"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/events"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/metrics"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=goals_test

type goalsRepo interface {
	Create(ctx context.Context, userID string, in CreateInput) (*fitness.Goal, error)
	Get(ctx context.Context, userID, id string) (*fitness.Goal, error)
	Update(ctx context.Context, userID, id string, in UpdateInput) (*fitness.Goal, error)
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string, params ListParams) ([]fitness.Goal, int, error)
	ListHistory(ctx context.Context, goalID string, params HistoryParams) ([]fitness.GoalHistory, int, error)
}

type progressInvalidator interface {
	InvalidateUser(userID string)
}

type eventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo           goalsRepo
	progress       progressInvalidator
	publisher      eventPublisher
	metricsManager *metrics.Manager
}

func NewService(
	repo goalsRepo,
	progress progressInvalidator,
	publisher eventPublisher,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		progress:       progress,
		publisher:      publisher,
		metricsManager: metricsManager,
	}
}

func (s *Service) List(ctx context.Context, userID string, params ListParams) (_ *pkg.Paginated[fitness.Goal], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	goals, total, err := s.repo.List(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return &pkg.Paginated[fitness.Goal]{
		Data:  goals,
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
	}, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*fitness.Goal, error) {
	return s.repo.Get(ctx, userID, id)
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (_ *fitness.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	goal, err := s.repo.Create(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, userID, events.TypeGoalCreated, goal.ID, goal)
	return goal, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (_ *fitness.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	goal, err := s.repo.Update(ctx, userID, id, in)
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, userID, events.TypeGoalUpdated, goal.ID, goal)
	return goal, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.afterWrite(ctx, userID, events.TypeGoalDeleted, id, nil)
	return nil
}

// History lists the journal of a goal owned by userID.
func (s *Service) History(ctx context.Context, userID, goalID string, params HistoryParams) (_ *pkg.Paginated[fitness.GoalHistory], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.repo.Get(ctx, userID, goalID); err != nil {
		return nil, err
	}

	history, total, err := s.repo.ListHistory(ctx, goalID, params)
	if err != nil {
		return nil, fmt.Errorf("list goal history: %w", err)
	}

	return &pkg.Paginated[fitness.GoalHistory]{
		Data:  history,
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
	}, nil
}

// afterWrite runs the side effects of a committed write; none of them fail the request.
func (s *Service) afterWrite(ctx context.Context, userID, eventType, goalID string, payload any) {
	s.progress.InvalidateUser(userID)

	if s.metricsManager != nil {
		s.metricsManager.CounterGoalChanges.WithLabelValues(eventType).Inc()
	}

	if err := s.publisher.Publish(ctx, events.NewEvent(eventType, userID, goalID, payload)); err != nil {
		log.Errorf("publish %s for goal %s: %s", eventType, goalID, err)
	}
}
