package auth

import (
	"context"
	"fmt"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type DeletedCounts struct {
	Activities  int64 `json:"activities"`
	Goals       int64 `json:"goals"`
	GoalHistory int64 `json:"goal_history"`
}

type AccountRepo struct {
	db *pgxpool.Pool
}

func NewAccountRepo(db *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{
		db: db,
	}
}

// DeleteUserData removes everything owned by userID in one transaction.
func (r *AccountRepo) DeleteUserData(ctx context.Context, userID string) (_ DeletedCounts, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.account.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return DeletedCounts{}, fmt.Errorf("begin tx: %w", err)
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

	var counts DeletedCounts

	tag, err := tx.Exec(ctx, `
		DELETE FROM goal_history
		WHERE goal_id IN (SELECT id FROM goals WHERE user_id = $1)`,
		userID,
	)
	if err != nil {
		return DeletedCounts{}, fmt.Errorf("delete goal history: %w", err)
	}
	counts.GoalHistory = tag.RowsAffected()

	tag, err = tx.Exec(ctx, `DELETE FROM goals WHERE user_id = $1`, userID)
	if err != nil {
		return DeletedCounts{}, fmt.Errorf("delete goals: %w", err)
	}
	counts.Goals = tag.RowsAffected()

	tag, err = tx.Exec(ctx, `DELETE FROM activities WHERE user_id = $1`, userID)
	if err != nil {
		return DeletedCounts{}, fmt.Errorf("delete activities: %w", err)
	}
	counts.Activities = tag.RowsAffected()

	return counts, nil
}
