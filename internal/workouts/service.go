package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitstreak/internal/telemetry/metrics"
	"github.com/2beens/fitstreak/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Insert(ctx context.Context, record Record) error
	ListDates(ctx context.Context, username string) ([]time.Time, error)
	ListRecent(ctx context.Context, username string, since time.Time) ([]Workout, error)
}

type achievementsAwarder interface {
	AwardIfEligible(ctx context.Context, username string, streak int) error
}

type streakCache interface {
	Get(username string) (int, bool)
	Set(username string, streak int)
	Invalidate(username string)
}

type Service struct {
	repo       workoutsRepo
	classifier *Classifier
	awarder    achievementsAwarder
	cache      streakCache
	metrics    *metrics.Manager
	// ability to inject the clock (for unit testing)
	NowFunc func() time.Time
}

func NewService(
	repo workoutsRepo,
	classifier *Classifier,
	awarder achievementsAwarder,
	cache streakCache,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:       repo,
		classifier: classifier,
		awarder:    awarder,
		cache:      cache,
		metrics:    metricsManager,
		NowFunc:    time.Now,
	}
}

// Record stores one workout for today and returns the recomputed streak.
// Award failures are logged only, the workout stays recorded and the next
// record call retries the missing awards.
func (s *Service) Record(ctx context.Context, username string, workoutID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.record")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	flags := s.classifier.Classify(workoutID)
	record := Record{
		Username:    username,
		WorkoutID:   workoutID,
		NominalDate: NominalDate(s.NowFunc()),
		Categories:  flags.Names(s.classifier.Vocabulary()),
	}
	if err := s.repo.Insert(ctx, record); err != nil {
		return 0, err
	}
	s.metrics.CounterWorkoutsRecorded.Inc()

	streak, err := s.computeStreak(ctx, username)
	if err != nil {
		// the cached streak predates this workout
		s.cache.Invalidate(username)
		return 0, fmt.Errorf("recompute streak: %w", err)
	}
	s.cache.Set(username, streak)
	span.SetAttributes(attribute.Int("streak", streak))

	if err := s.awarder.AwardIfEligible(ctx, username, streak); err != nil {
		log.Errorf("workouts service, award achievements for [%s], streak %d: %s", username, streak, err)
	}

	return streak, nil
}

// Streak reads through the cache, computing from the store on a miss.
func (s *Service) Streak(ctx context.Context, username string) (int, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.streak")
	defer span.End()

	if streak, found := s.cache.Get(username); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return streak, nil
	}

	streak, err := s.computeStreak(ctx, username)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	s.cache.Set(username, streak)
	return streak, nil
}

func (s *Service) History(ctx context.Context, username string, since time.Time) ([]Workout, error) {
	return s.repo.ListRecent(ctx, username, since)
}

func (s *Service) Workouts() []Definition {
	return s.classifier.Workouts()
}

func (s *Service) computeStreak(ctx context.Context, username string) (int, error) {
	dates, err := s.repo.ListDates(ctx, username)
	if err != nil {
		return 0, err
	}
	return ComputeStreak(dates), nil
}
