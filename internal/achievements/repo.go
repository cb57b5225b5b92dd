package achievements

import (
	"context"
	"fmt"
	"time"

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

// Award is idempotent, an already earned or unknown code inserts nothing.
func (r *Repo) Award(ctx context.Context, code, username string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.award")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("achievement.code", code))

	tag, err := r.db.Exec(ctx, `
		INSERT INTO user_achievements (username, achievement_id)
		SELECT $2, id FROM achievements WHERE code = $1
		ON CONFLICT (username, achievement_id) DO NOTHING
	`, code, username)
	if err != nil {
		return fmt.Errorf("insert user achievement: %w", err)
	}

	span.SetAttributes(attribute.Bool("achievement.new", tag.RowsAffected() > 0))
	return nil
}

// EnsureCatalog inserts the missing achievement rows for the ladder, so that
// Award has something to grant for custom thresholds. Existing rows are kept.
func (r *Repo) EnsureCatalog(ctx context.Context, ladder Ladder) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.ensureCatalog")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	batch := &pgx.Batch{}
	for _, entry := range ladder.Catalog() {
		batch.Queue(`
			INSERT INTO achievements (code, title, icon, sort_order)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (code) DO NOTHING
		`, entry.Code, entry.Title, entry.Icon, entry.SortOrder)
	}
	if batch.Len() == 0 {
		return nil
	}

	results := r.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close catalog batch: %w", closeErr)
		}
	}()

	inserted := int64(0)
	for i := 0; i < batch.Len(); i++ {
		tag, execErr := results.Exec()
		if execErr != nil {
			return fmt.Errorf("insert achievement catalog row: %w", execErr)
		}
		inserted += tag.RowsAffected()
	}
	span.SetAttributes(attribute.Int64("achievements.inserted", inserted))
	return nil
}

// ListWithEarnedStatus returns the whole catalog in display order.
func (r *Repo) ListWithEarnedStatus(ctx context.Context, username string) (_ []Status, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	rows, err := r.db.Query(ctx, `
		SELECT a.code, a.title, a.icon, ua.earned_at
		FROM achievements a
		LEFT JOIN user_achievements ua ON ua.achievement_id = a.id AND ua.username = $1
		ORDER BY a.sort_order, a.id
	`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []Status
	for rows.Next() {
		var s Status
		var earnedAt *time.Time
		if err := rows.Scan(&s.Code, &s.Title, &s.Icon, &earnedAt); err != nil {
			return nil, err
		}
		s.Earned = earnedAt != nil
		s.EarnedAt = earnedAt
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
