package progress

import (
	"context"

	"github.com/2beens/fitstreak/internal/apperr"
	"github.com/2beens/fitstreak/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=progress_test

type progressRepo interface {
	Get(ctx context.Context, username string) (int, bool, error)
	Upsert(ctx context.Context, username string, completed int) error
}

type Tracker struct {
	repo        progressRepo
	cycleLength int
}

func NewTracker(repo progressRepo, cycleLength int) *Tracker {
	if cycleLength <= 0 {
		cycleLength = DefaultCycleLength
	}
	return &Tracker{
		repo:        repo,
		cycleLength: cycleLength,
	}
}

func (t *Tracker) CycleLength() int {
	return t.cycleLength
}

// GetHighest is 0 for users who never recorded progress.
func (t *Tracker) GetHighest(ctx context.Context, username string) (int, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.get")
	defer span.End()

	highest, _, err := t.repo.Get(ctx, username)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return highest, nil
}

// RecordHighest merges completed into the stored maximum.
func (t *Tracker) RecordHighest(ctx context.Context, username string, completed int) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.record")
	defer span.End()

	if completed < 0 {
		return apperr.Validation("completed cannot be negative")
	}
	if err := t.repo.Upsert(ctx, username, completed); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (t *Tracker) Path(highest int) []Cycle {
	return Path(highest, t.cycleLength)
}
