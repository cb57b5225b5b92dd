package workouts

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/fitstreak/internal/auth"
	"github.com/2beens/fitstreak/internal/telemetry/tracing"
	"github.com/2beens/fitstreak/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type recorder interface {
	Record(ctx context.Context, username string, workoutID int) (int, error)
}

type Handler struct {
	service recorder
}

func NewHandler(service recorder) *Handler {
	return &Handler{
		service: service,
	}
}

type recordRequest struct {
	WorkoutID *int `json:"workoutId"`
}

type recordResponse struct {
	Success bool `json:"success"`
	Streak  int  `json:"streak"`
}

func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.record")
	defer span.End()

	session := auth.FromContext(ctx)
	if !session.IsAuthenticated() {
		pkg.WriteJSONError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	workoutID, ok := parseWorkoutID(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	streak, err := h.service.Record(ctx, session.Username, workoutID)
	if err != nil {
		log.Errorf("record workout [%d] for [%s]: %s", workoutID, session.Username, err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, recordResponse{Success: true, Streak: streak}, http.StatusOK)
}

func parseWorkoutID(r *http.Request) (int, bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req recordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.WorkoutID == nil {
			return 0, false
		}
		return *req.WorkoutID, true
	}

	if err := r.ParseForm(); err != nil {
		return 0, false
	}
	workoutID, err := strconv.Atoi(r.Form.Get("workoutId"))
	if err != nil {
		return 0, false
	}
	return workoutID, true
}
