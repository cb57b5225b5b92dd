package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitstreak/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Get reports found=false when the user has no progress row yet.
func (r *Repo) Get(ctx context.Context, username string) (_ int, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.get")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var highest int
	err = r.db.QueryRow(ctx, `
		SELECT highest_completed FROM progress WHERE username = $1
	`, username).Scan(&highest)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return highest, true, nil
}

// Upsert never lowers the stored value.
func (r *Repo) Upsert(ctx context.Context, username string, completed int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.upsert")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("progress.completed", completed))

	if _, err := r.db.Exec(ctx, `
		INSERT INTO progress (username, highest_completed)
		VALUES ($1, $2)
		ON CONFLICT (username)
		DO UPDATE SET highest_completed = GREATEST(progress.highest_completed, EXCLUDED.highest_completed)
	`, username, completed); err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}
