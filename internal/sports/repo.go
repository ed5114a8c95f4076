package sports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSportNotFound      = errors.New("sport not found")
	ErrDuplicateSportCode = errors.New("sport with this code already exists")
)

const sportColumns = `id::text, code, name, description, profile`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanSport(row pgx.Row) (*fitness.Sport, error) {
	var (
		s       fitness.Sport
		profile []byte
	)
	if err := row.Scan(&s.ID, &s.Code, &s.Name, &s.Description, &profile); err != nil {
		return nil, err
	}
	if len(profile) > 0 {
		s.Profile = &fitness.SportProfile{}
		if err := json.Unmarshal(profile, s.Profile); err != nil {
			return nil, fmt.Errorf("unmarshal profile of sport %s: %w", s.Code, err)
		}
	}
	return &s, nil
}

func (r *Repo) List(ctx context.Context) (_ []fitness.Sport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sports.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+sportColumns+` FROM sports ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sports := make([]fitness.Sport, 0)
	for rows.Next() {
		s, err := scanSport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sport: %w", err)
		}
		sports = append(sports, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return sports, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *fitness.Sport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sports.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx, `SELECT `+sportColumns+` FROM sports WHERE id = $1::text::uuid`, id)
	sport, err := scanSport(row)
	if err != nil {
		if pkg.IsNoRows(err) || pkg.IsInvalidTextRepresentation(err) {
			return nil, ErrSportNotFound
		}
		return nil, err
	}

	return sport, nil
}

func (r *Repo) Create(ctx context.Context, in CreateInput) (_ *fitness.Sport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sports.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var profile []byte
	if in.Profile != nil {
		if profile, err = json.Marshal(in.Profile); err != nil {
			return nil, fmt.Errorf("marshal profile: %w", err)
		}
	}

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO sports (code, name, description, profile)
		VALUES ($1, $2, $3, $4::jsonb)
		RETURNING `+sportColumns,
		in.Code, in.Name, in.Description, profile,
	)
	sport, err := scanSport(row)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrDuplicateSportCode
		}
		return nil, err
	}

	return sport, nil
}
