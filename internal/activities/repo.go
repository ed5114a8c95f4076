package activities

import (
	"context"
	"fmt"
	"time"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	startDateLocalLayout = "2006-01-02T15:04:05"

	// raw postgres interval text, read back through fitness.ParseIntervalSeconds
	intervalTextColumns = `moving_time::text, elapsed_time::text`
	// "<N>s" form for the listing, which is what the display formatters expect
	intervalSecondsColumns = `extract(epoch FROM moving_time)::bigint::text || 's', extract(epoch FROM elapsed_time)::bigint::text || 's'`

	// sport_type falls back to type for rows imported without one
	sportCodeExpr = `lower(coalesce(nullif(sport_type, ''), type))`
)

func activityColumns(intervals string) string {
	return `id::text, user_id::text, name, type, sport_type, start_date, start_date_local, timezone, utc_offset,
		distance::float8, ` + intervals + `, total_elevation_gain::float8, average_speed::float8, created_at`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func rows2activities(rows pgx.Rows) ([]fitness.Activity, error) {
	activities := make([]fitness.Activity, 0)
	for rows.Next() {
		var (
			a              fitness.Activity
			startDate      time.Time
			startDateLocal time.Time
		)
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Name, &a.Type, &a.SportType,
			&startDate, &startDateLocal, &a.Timezone, &a.UTCOffset,
			&a.Distance, &a.MovingTime, &a.ElapsedTime,
			&a.TotalElevationGain, &a.AverageSpeed, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.StartDate = startDate.UTC().Format(time.RFC3339)
		a.StartDateLocal = startDateLocal.Format(startDateLocalLayout)
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return activities, nil
}

// ListForYear returns the activities of userID that started within the UTC year,
// oldest first. A non-nil sportCode keeps only that sport, compared case-insensitively.
func (r *Repo) ListForYear(ctx context.Context, userID string, year int, sportCode *string) (_ []fitness.Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.listforyear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("year", year))

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	rows, err := r.db.Query(
		ctx,
		`SELECT `+activityColumns(intervalTextColumns)+` FROM activities
			WHERE user_id = $1::text::uuid
				AND start_date >= $2 AND start_date < $3
				AND ($4::text IS NULL OR `+sportCodeExpr+` = lower($4))
			ORDER BY start_date ASC;`,
		userID, from, to, sportCode,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2activities(rows)
}

func (r *Repo) List(ctx context.Context, userID string, params ListParams) (_ []fitness.Activity, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.list")
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

	const filter = `
		WHERE user_id = $1::text::uuid
			AND ($2::timestamptz IS NULL OR start_date >= $2)
			AND ($3::timestamptz IS NULL OR start_date <= $3)
			AND ($4::text IS NULL OR sport_type = $4)
			AND ($5::text IS NULL OR type = $5)`
	args := []any{userID, params.From, params.To, params.SportType, params.Type}

	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM activities`+filter, args...).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count activities: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+activityColumns(intervalSecondsColumns)+` FROM activities`+filter+`
			ORDER BY `+column+` `+direction+`, id
			LIMIT $6 OFFSET $7;`,
		append(args, params.Limit, pkg.Offset(params.Page, params.Limit))...,
	)
	if err != nil {
		return nil, -1, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	activities, err := rows2activities(rows)
	if err != nil {
		return nil, -1, err
	}
	return activities, total, nil
}

func intervalArg(i fitness.Interval) *string {
	if i.IsNull() {
		return nil
	}
	s := i.String()
	return &s
}

// BulkInsert stores activities in one transaction and returns how many were written.
func (r *Repo) BulkInsert(ctx context.Context, activities []fitness.Activity) (inserted int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.bulkinsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(activities)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
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

	batch := &pgx.Batch{}
	for _, a := range activities {
		batch.Queue(
			`INSERT INTO activities (
				user_id, name, type, sport_type, start_date, start_date_local, timezone, utc_offset,
				distance, moving_time, elapsed_time, total_elevation_gain, average_speed
			) VALUES (
				$1::text::uuid, $2, $3, $4, $5::text::timestamptz, $6::text::timestamp, $7, $8,
				$9, $10::text::interval, $11::text::interval, $12, $13
			);`,
			a.UserID, a.Name, a.Type, a.SportType, a.StartDate, a.StartDateLocal, a.Timezone, a.UTCOffset,
			a.Distance, intervalArg(a.MovingTime), intervalArg(a.ElapsedTime), a.TotalElevationGain, a.AverageSpeed,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range activities {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return 0, fmt.Errorf("insert activity: %w", err)
		}
		inserted++
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("close batch: %w", err)
	}

	return inserted, nil
}
