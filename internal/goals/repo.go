package goals

import (
	"context"
	"errors"
	"fmt"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrGoalConflict = errors.New("a similar goal already exists for the selected year and metric")
	ErrUnknownSport = errors.New("sport does not exist")
)

const goalColumns = `id::text, user_id::text, year, scope_type, sport_id::text, metric_type, target_value::float8, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanGoal(row pgx.Row) (*fitness.Goal, error) {
	var (
		g      fitness.Goal
		scope  string
		metric string
	)
	if err := row.Scan(&g.ID, &g.UserID, &g.Year, &scope, &g.SportID, &metric, &g.TargetValue, &g.CreatedAt); err != nil {
		return nil, err
	}
	g.ScopeType = fitness.Scope(scope)
	g.MetricType = fitness.Metric(metric)
	return &g, nil
}

func rows2goals(rows pgx.Rows) ([]fitness.Goal, error) {
	goals := make([]fitness.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return goals, nil
}

func mapWriteError(err error) error {
	switch {
	case pkg.IsUniqueViolationError(err):
		return fmt.Errorf("%w: %w", ErrGoalConflict, err)
	case pkg.IsForeignKeyViolationError(err):
		return fmt.Errorf("%w: %w", ErrUnknownSport, err)
	default:
		return err
	}
}

func (r *Repo) Create(ctx context.Context, userID string, in CreateInput) (_ *fitness.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	goal, err := scanGoal(r.db.QueryRow(
		ctx,
		`INSERT INTO goals (user_id, year, scope_type, sport_id, metric_type, target_value)
			VALUES ($1, $2, $3, $4::text::uuid, $5, $6)
			RETURNING `+goalColumns+`;`,
		userID, in.Year, in.ScopeType.String(), in.SportID, in.MetricType.String(), in.TargetValue,
	))
	if err != nil {
		return nil, mapWriteError(err)
	}

	span.SetAttributes(attribute.String("goal.id", goal.ID))
	return goal, nil
}

func (r *Repo) Get(ctx context.Context, userID, id string) (_ *fitness.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", id))

	goal, err := scanGoal(r.db.QueryRow(
		ctx,
		`SELECT `+goalColumns+` FROM goals WHERE id = $1 AND user_id = $2;`,
		id, userID,
	))
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

// Update applies in and journals the previous metric and target into goal_history.
func (r *Repo) Update(ctx context.Context, userID, id string, in UpdateInput) (_ *fitness.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var (
		prevMetric string
		prevTarget float64
	)
	if err := tx.QueryRow(
		ctx,
		`SELECT metric_type, target_value::float8 FROM goals WHERE id = $1 AND user_id = $2 FOR UPDATE;`,
		id, userID,
	).Scan(&prevMetric, &prevTarget); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("lock goal: %w", err)
	}

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO goal_history (goal_id, previous_metric_type, previous_target_value) VALUES ($1, $2, $3);`,
		id, prevMetric, prevTarget,
	); err != nil {
		return nil, fmt.Errorf("journal goal: %w", err)
	}

	var metric *string
	if in.MetricType != nil {
		m := in.MetricType.String()
		metric = &m
	}

	goal, err := scanGoal(tx.QueryRow(
		ctx,
		`UPDATE goals SET
				metric_type = COALESCE($3::text, metric_type),
				target_value = COALESCE($4::float8, target_value)
			WHERE id = $1 AND user_id = $2
			RETURNING `+goalColumns+`;`,
		id, userID, metric, in.TargetValue,
	))
	if err != nil {
		return nil, mapWriteError(err)
	}

	return goal, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM goals WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) List(ctx context.Context, userID string, params ListParams) (_ []fitness.Goal, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("limit", params.Limit))

	column, ok := sortableColumns[params.SortBy]
	if !ok {
		return nil, -1, fmt.Errorf("unsupported sort column %q", params.SortBy)
	}
	direction, ok := sortDirections[params.SortDir]
	if !ok {
		return nil, -1, fmt.Errorf("unsupported sort direction %q", params.SortDir)
	}

	var scope, metric *string
	if params.ScopeType != nil {
		s := params.ScopeType.String()
		scope = &s
	}
	if params.MetricType != nil {
		m := params.MetricType.String()
		metric = &m
	}

	const filter = `
		WHERE user_id = $1
			AND ($2::int IS NULL OR year = $2)
			AND ($3::text IS NULL OR scope_type = $3)
			AND ($4::text IS NULL OR metric_type = $4)
			AND ($5::text IS NULL OR sport_id = $5::text::uuid)`
	args := []any{userID, params.Year, scope, metric, params.SportID}

	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM goals`+filter, args...).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count goals: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+goalColumns+` FROM goals`+filter+`
			ORDER BY `+column+` `+direction+`, id
			LIMIT $6 OFFSET $7;`,
		append(args, params.Limit, pkg.Offset(params.Page, params.Limit))...,
	)
	if err != nil {
		return nil, -1, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	goals, err := rows2goals(rows)
	if err != nil {
		return nil, -1, err
	}
	return goals, total, nil
}

// ListForYear returns every goal of userID for year, newest first.
func (r *Repo) ListForYear(ctx context.Context, userID string, year int) (_ []fitness.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.listforyear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("year", year))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+goalColumns+` FROM goals WHERE user_id = $1 AND year = $2 ORDER BY created_at DESC;`,
		userID, year,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2goals(rows)
}

// Latest returns the newest goal matching the metric and scope. Global goals
// match on a NULL sport_id, per-sport goals on the given one.
func (r *Repo) Latest(
	ctx context.Context,
	userID string,
	year int,
	metric fitness.Metric,
	scope fitness.Scope,
	sportID *string,
) (_ *fitness.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("year", year),
		attribute.String("metric", metric.String()),
		attribute.String("scope", scope.String()),
	)

	goal, err := scanGoal(r.db.QueryRow(
		ctx,
		`SELECT `+goalColumns+` FROM goals
			WHERE user_id = $1
				AND year = $2
				AND metric_type = $3
				AND scope_type = $4
				AND (($5::text IS NULL AND sport_id IS NULL) OR sport_id = $5::text::uuid)
			ORDER BY created_at DESC
			LIMIT 1;`,
		userID, year, metric.String(), scope.String(), sportID,
	))
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

func (r *Repo) ListHistory(ctx context.Context, goalID string, params HistoryParams) (_ []fitness.GoalHistory, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", goalID))

	direction, ok := sortDirections[params.SortDir]
	if !ok {
		return nil, -1, fmt.Errorf("unsupported sort direction %q", params.SortDir)
	}

	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM goal_history WHERE goal_id = $1`, goalID).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count history: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id::text, goal_id::text, previous_metric_type, previous_target_value::float8, changed_at
			FROM goal_history
			WHERE goal_id = $1
			ORDER BY changed_at `+direction+`, id
			LIMIT $2 OFFSET $3;`,
		goalID, params.Limit, pkg.Offset(params.Page, params.Limit),
	)
	if err != nil {
		return nil, -1, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	history := make([]fitness.GoalHistory, 0)
	for rows.Next() {
		var (
			h      fitness.GoalHistory
			metric string
		)
		if err := rows.Scan(&h.ID, &h.GoalID, &metric, &h.PreviousTargetValue, &h.ChangedAt); err != nil {
			return nil, -1, fmt.Errorf("scan history: %w", err)
		}
		h.PreviousMetricType = fitness.Metric(metric)
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, -1, fmt.Errorf("rows: %w", err)
	}

	return history, total, nil
}
