package progress

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/fitstreak/internal/apperr"
	"github.com/2beens/fitstreak/internal/auth"
	"github.com/2beens/fitstreak/internal/telemetry/tracing"
	"github.com/2beens/fitstreak/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type tracker interface {
	GetHighest(ctx context.Context, username string) (int, error)
	RecordHighest(ctx context.Context, username string, completed int) error
}

type Handler struct {
	tracker tracker
}

func NewHandler(tracker tracker) *Handler {
	return &Handler{
		tracker: tracker,
	}
}

type highestResponse struct {
	HighestCompleted int `json:"highest_completed"`
}

type recordRequest struct {
	Completed *int `json:"completed"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.get")
	defer span.End()

	session := auth.FromContext(ctx)
	if !session.IsAuthenticated() {
		// guests always start from scratch
		pkg.WriteJSON(w, highestResponse{}, http.StatusOK)
		return
	}

	highest, err := h.tracker.GetHighest(ctx, session.Username)
	if err != nil {
		log.Errorf("get progress for [%s]: %s", session.Username, err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, highestResponse{HighestCompleted: highest}, http.StatusOK)
}

func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.record")
	defer span.End()

	session := auth.FromContext(ctx)
	if !session.IsAuthenticated() {
		pkg.WriteJSONError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	completed, ok := parseCompleted(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid completed value", http.StatusBadRequest)
		return
	}

	if err := h.tracker.RecordHighest(ctx, session.Username, completed); err != nil {
		if apperr.KindOf(err) != apperr.KindValidation {
			log.Errorf("record progress [%d] for [%s]: %s", completed, session.Username, err)
		}
		pkg.WriteJSONError(w, apperr.PublicMessage(err), apperr.Status(err))
		return
	}
	pkg.WriteJSON(w, successResponse{Success: true}, http.StatusOK)
}

func parseCompleted(r *http.Request) (int, bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req recordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Completed == nil {
			return 0, false
		}
		return *req.Completed, true
	}

	if err := r.ParseForm(); err != nil {
		return 0, false
	}
	completed, err := strconv.Atoi(r.Form.Get("completed"))
	if err != nil {
		return 0, false
	}
	return completed, true
}
