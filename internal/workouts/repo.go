package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitstreak/internal/telemetry/tracing"
	"github.com/2beens/fitstreak/pkg"

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

func (r *Repo) Insert(ctx context.Context, record Record) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.insert")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("workout.id", record.WorkoutID))

	categories := record.Categories
	if categories == nil {
		categories = []string{}
	}

	if _, err := r.db.Exec(ctx, `
		INSERT INTO workouts (username, workout_id, workout_date, categories)
		VALUES ($1, $2, $3, $4)
	`, record.Username, record.WorkoutID, record.NominalDate, categories); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return fmt.Errorf("insert workout, unknown user [%s]: %w", record.Username, err)
		}
		return fmt.Errorf("insert workout: %w", err)
	}
	return nil
}

// ListDates returns distinct workout days, most recent first.
func (r *Repo) ListDates(ctx context.Context, username string) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.dates")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT date_actual
		FROM workouts
		WHERE username = $1
		ORDER BY date_actual DESC
	`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("dates.count", len(dates)))
	return dates, nil
}

// ListRecent returns workouts done on or after since, most recent first.
func (r *Repo) ListRecent(ctx context.Context, username string, since time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.recent")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, workout_id, workout_date, date_actual, categories
		FROM workouts
		WHERE username = $1 AND date_actual >= $2
		ORDER BY date_actual DESC, id DESC
	`, username, civilDay(since))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.WorkoutID, &w.NominalDate, &w.DateActual, &w.Categories); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}
