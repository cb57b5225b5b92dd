package pages

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fitstreak/internal/achievements"
	"github.com/2beens/fitstreak/internal/auth"
	"github.com/2beens/fitstreak/internal/progress"
	"github.com/2beens/fitstreak/internal/telemetry/metrics"
	"github.com/2beens/fitstreak/internal/telemetry/tracing"
	"github.com/2beens/fitstreak/internal/users"
	"github.com/2beens/fitstreak/internal/views"
	"github.com/2beens/fitstreak/internal/workouts"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=pages_test

const calendarDays = 35

type workoutsReader interface {
	Streak(ctx context.Context, username string) (int, error)
	History(ctx context.Context, username string, since time.Time) ([]workouts.Workout, error)
	Workouts() []workouts.Definition
}

type progressReader interface {
	GetHighest(ctx context.Context, username string) (int, error)
	Path(highest int) []progress.Cycle
}

type achievementsLister interface {
	ListWithEarnedStatus(ctx context.Context, username string) ([]achievements.Status, error)
}

type pictureStore interface {
	GetProfilePicture(ctx context.Context, username string) (*users.Picture, error)
	HasProfilePicture(ctx context.Context, username string) (bool, error)
	SetProfilePicture(ctx context.Context, username string, picture users.Picture) error
}

// Handler renders the app pages. Store failures never break a page, the page
// is shown in demo mode instead.
type Handler struct {
	workouts     workoutsReader
	progress     progressReader
	achievements achievementsLister
	pictures     pictureStore
	metrics      *metrics.Manager
	// ability to inject the clock (for unit testing)
	NowFunc func() time.Time
}

func NewHandler(
	workoutsReader workoutsReader,
	progressReader progressReader,
	achievementsLister achievementsLister,
	pictures pictureStore,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		workouts:     workoutsReader,
		progress:     progressReader,
		achievements: achievementsLister,
		pictures:     pictures,
		metrics:      metricsManager,
		NowFunc:      time.Now,
	}
}

func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if auth.FromContext(r.Context()).CanView() {
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pages.home")
	defer span.End()

	session := auth.FromContext(ctx)
	view := views.HomeView{
		Viewer: viewerOf(session),
		Demo:   !session.IsAuthenticated(),
	}

	if session.IsAuthenticated() {
		streak, streakErr := h.workouts.Streak(ctx, session.Username)
		highest, progressErr := h.progress.GetHighest(ctx, session.Username)
		if streakErr != nil || progressErr != nil {
			h.demoFallback("home", session.Username, streakErr, progressErr)
			view.Demo = true
		} else {
			view.Streak = streak
			view.HighestCompleted = highest
		}
	}
	view.Path = pathView(h.progress.Path(view.HighestCompleted))

	views.Render(w, r, http.StatusOK, views.HomePage(view))
}

func (h *Handler) HandleWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pages.workouts")
	defer span.End()

	session := auth.FromContext(ctx)
	view := views.WorkoutsView{
		Viewer: viewerOf(session),
		Demo:   !session.IsAuthenticated(),
	}
	for _, d := range h.workouts.Workouts() {
		view.Workouts = append(view.Workouts, views.WorkoutOption{
			ID:         d.ID,
			Name:       d.Name,
			Categories: d.Categories,
		})
	}

	if session.IsAuthenticated() {
		streak, err := h.workouts.Streak(ctx, session.Username)
		if err != nil {
			h.demoFallback("workouts", session.Username, err)
			view.Demo = true
		} else {
			view.Streak = streak
		}
	}

	views.Render(w, r, http.StatusOK, views.WorkoutsPage(view))
}

func (h *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pages.calendar")
	defer span.End()

	session := auth.FromContext(ctx)
	now := h.NowFunc()
	view := views.CalendarView{
		Viewer: viewerOf(session),
		Demo:   !session.IsAuthenticated(),
	}

	var history []workouts.Workout
	if session.IsAuthenticated() {
		since := now.AddDate(0, 0, -(calendarDays - 1))
		var err error
		history, err = h.workouts.History(ctx, session.Username, since)
		if err != nil {
			h.demoFallback("calendar", session.Username, err)
			view.Demo = true
			history = nil
		}
	}
	view.Days = buildCalendar(now, history, calendarDays)

	views.Render(w, r, http.StatusOK, views.CalendarPage(view))
}

func (h *Handler) HandleAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pages.achievements")
	defer span.End()

	session := auth.FromContext(ctx)
	view := views.AchievementsView{
		Viewer: viewerOf(session),
		Demo:   !session.IsAuthenticated(),
	}

	// guests see the catalog with nothing earned
	statuses, err := h.achievements.ListWithEarnedStatus(ctx, session.Username)
	if err != nil {
		h.demoFallback("achievements", session.Username, err)
		view.Demo = true
		statuses = nil
	}
	view.Achievements = badgesView(statuses)

	views.Render(w, r, http.StatusOK, views.AchievementsPage(view))
}

func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pages.profile")
	defer span.End()

	session := auth.FromContext(ctx)
	view := views.ProfileView{
		Viewer: viewerOf(session),
		Demo:   !session.IsAuthenticated(),
	}

	if session.IsAuthenticated() {
		streak, streakErr := h.workouts.Streak(ctx, session.Username)
		statuses, achievementsErr := h.achievements.ListWithEarnedStatus(ctx, session.Username)
		if streakErr != nil || achievementsErr != nil {
			h.demoFallback("profile", session.Username, streakErr, achievementsErr)
			view.Demo = true
		} else {
			view.Streak = streak
			for _, s := range statuses {
				if s.Earned {
					view.EarnedBadges++
				}
			}
		}

		hasPicture, err := h.pictures.HasProfilePicture(ctx, session.Username)
		if err != nil {
			log.Warnf("profile page, check picture of [%s]: %s", session.Username, err)
		}
		view.HasPicture = hasPicture
	}

	views.Render(w, r, http.StatusOK, views.ProfilePage(view))
}

func (h *Handler) demoFallback(page, username string, errs ...error) {
	for _, err := range errs {
		if err != nil {
			log.Warnf("page [%s] for [%s] falls back to demo mode: %s", page, username, err)
		}
	}
	h.metrics.CounterDemoModeFallbacks.WithLabelValues(page).Inc()
}

func viewerOf(session *auth.Session) views.Viewer {
	return views.Viewer{
		Username: session.Username,
		Guest:    !session.IsAuthenticated(),
	}
}

func pathView(cycles []progress.Cycle) []views.PathCycle {
	path := make([]views.PathCycle, 0, len(cycles))
	for _, c := range cycles {
		nodes := make([]views.PathNode, 0, len(c.Nodes))
		for _, n := range c.Nodes {
			nodes = append(nodes, views.PathNode{ID: n.ID, Completed: n.Completed, Current: n.Current})
		}
		path = append(path, views.PathCycle{Number: c.Number, Nodes: nodes})
	}
	return path
}

func badgesView(statuses []achievements.Status) []views.AchievementBadge {
	badges := make([]views.AchievementBadge, 0, len(statuses))
	for _, s := range statuses {
		badges = append(badges, views.AchievementBadge{
			Code:     s.Code,
			Title:    s.Title,
			Icon:     s.Icon,
			Earned:   s.Earned,
			EarnedAt: s.EarnedAt,
		})
	}
	return badges
}
