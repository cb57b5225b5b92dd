package achievements

import (
	"context"
	"fmt"

	"github.com/2beens/fitstreak/internal/telemetry/metrics"
	"github.com/2beens/fitstreak/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=awarder_mocks_test.go -package=achievements_test

type awardsRepo interface {
	Award(ctx context.Context, code, username string) error
}

// Awarder grants every badge the streak qualifies for. It keeps no state,
// the store absorbs repeated awards.
type Awarder struct {
	repo    awardsRepo
	ladder  Ladder
	metrics *metrics.Manager
}

func NewAwarder(repo awardsRepo, ladder Ladder, metricsManager *metrics.Manager) *Awarder {
	return &Awarder{
		repo:    repo,
		ladder:  ladder,
		metrics: metricsManager,
	}
}

// AwardIfEligible keeps going after a failed award, all failures are combined.
func (a *Awarder) AwardIfEligible(ctx context.Context, username string, streak int) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.achievements.award")
	defer span.End()

	codes := a.ladder.Eligible(streak)
	span.SetAttributes(
		attribute.Int("streak", streak),
		attribute.Int("eligible.count", len(codes)),
	)

	var err error
	for _, code := range codes {
		if awardErr := a.repo.Award(ctx, code, username); awardErr != nil {
			a.count(code, "error")
			err = multierr.Append(err, fmt.Errorf("award %s: %w", code, awardErr))
			continue
		}
		a.count(code, "ok")
	}

	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (a *Awarder) count(code, result string) {
	if a.metrics == nil {
		return
	}
	a.metrics.CounterAchievementAwards.WithLabelValues(code, result).Inc()
}
