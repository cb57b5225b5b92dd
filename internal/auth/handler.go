package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitstreak/internal/apperr"
	"github.com/2beens/fitstreak/internal/telemetry/metrics"
	"github.com/2beens/fitstreak/internal/telemetry/tracing"
	"github.com/2beens/fitstreak/internal/views"
	"github.com/2beens/fitstreak/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type credentialsChecker interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
}

type sessionManager interface {
	StartAuthenticated(ctx context.Context, username string, createdAt time.Time) (*Session, error)
	StartGuest(ctx context.Context, createdAt time.Time) (*Session, error)
	Destroy(ctx context.Context, token string) error
}

type cookieWriter interface {
	Set(w http.ResponseWriter, r *http.Request, token string) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

type Handler struct {
	authenticator credentialsChecker
	sessions      sessionManager
	cookies       cookieWriter
	metrics       *metrics.Manager
}

func NewHandler(
	authenticator credentialsChecker,
	sessions sessionManager,
	cookies cookieWriter,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		authenticator: authenticator,
		sessions:      sessions,
		cookies:       cookies,
		metrics:       metricsManager,
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if FromContext(r.Context()).IsAuthenticated() {
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}

	view := views.LoginView{}
	if r.URL.Query().Get("registered") != "" {
		view.Notice = "Account created, you can log in now."
	}
	views.Render(w, r, http.StatusOK, views.LoginPage(view))
}

func (h *Handler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, http.StatusOK, views.RegisterPage(views.RegisterView{}))
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	creds, err := readCredentials(r)
	if err != nil {
		h.loginFailed(w, r, creds.Username, apperr.Validation("invalid login request"))
		return
	}

	if err := h.authenticator.Login(ctx, creds.Username, creds.Password); err != nil {
		h.loginFailed(w, r, creds.Username, err)
		return
	}

	// rotate: whatever session the browser had before (guest included) is dropped
	if current := FromContext(ctx); current.Token != "" {
		if err := h.sessions.Destroy(ctx, current.Token); err != nil {
			log.Warnf("login [%s], destroy previous session: %s", creds.Username, err)
		}
	}

	session, err := h.sessions.StartAuthenticated(ctx, creds.Username, time.Now())
	if err != nil {
		log.Errorf("login [%s], start session: %s", creds.Username, err)
		h.loginFailed(w, r, creds.Username, apperr.Persistence(err))
		return
	}
	if err := h.cookies.Set(w, r, session.Token); err != nil {
		log.Errorf("login [%s], set cookie: %s", creds.Username, err)
		h.loginFailed(w, r, creds.Username, apperr.Persistence(err))
		return
	}

	h.metrics.CounterLogins.WithLabelValues("ok").Inc()
	log.Debugf("user [%s] logged in", creds.Username)

	if pkg.IsAPIRequest(r) {
		pkg.WriteJSON(w, successResponse{Success: true}, http.StatusOK)
		return
	}
	http.Redirect(w, r, "/home", http.StatusFound)
}

func (h *Handler) loginFailed(w http.ResponseWriter, r *http.Request, username string, err error) {
	var status int
	var apiMessage, pageMessage string
	switch {
	case errors.Is(err, ErrUserNotFound):
		status, apiMessage, pageMessage = http.StatusUnauthorized, "invalid credentials", "No account found for that username."
		h.metrics.CounterLogins.WithLabelValues("invalid_credentials").Inc()
	case errors.Is(err, ErrWrongPassword):
		status, apiMessage, pageMessage = http.StatusUnauthorized, "invalid credentials", "Incorrect password."
		h.metrics.CounterLogins.WithLabelValues("invalid_credentials").Inc()
	case apperr.KindOf(err) == apperr.KindValidation:
		status = http.StatusBadRequest
		apiMessage = apperr.PublicMessage(err)
		pageMessage = apiMessage
		h.metrics.CounterLogins.WithLabelValues("invalid_request").Inc()
	default:
		log.Errorf("login [%s]: %s", username, err)
		status, apiMessage, pageMessage = http.StatusInternalServerError, "internal server error", "Something went wrong, please try again."
		h.metrics.CounterLogins.WithLabelValues("error").Inc()
	}

	if pkg.IsAPIRequest(r) {
		pkg.WriteJSONError(w, apiMessage, status)
		return
	}
	views.Render(w, r, status, views.LoginPage(views.LoginView{
		Username: username,
		Error:    pageMessage,
	}))
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	creds, err := readCredentials(r)
	if err == nil {
		err = h.authenticator.Register(ctx, creds.Username, creds.Password)
	} else {
		err = apperr.Validation("invalid register request")
	}

	if err != nil {
		status := apperr.Status(err)
		message := apperr.PublicMessage(err)
		result := "error"
		switch {
		case errors.Is(err, ErrUsernameTaken):
			status, message, result = http.StatusConflict, "username already taken", "conflict"
		case status == http.StatusBadRequest:
			result = "invalid_request"
		default:
			log.Errorf("register [%s]: %s", creds.Username, err)
		}
		h.metrics.CounterRegistrations.WithLabelValues(result).Inc()

		if pkg.IsAPIRequest(r) {
			pkg.WriteJSONError(w, message, status)
			return
		}
		views.Render(w, r, status, views.RegisterPage(views.RegisterView{
			Username: creds.Username,
			Error:    message,
		}))
		return
	}

	h.metrics.CounterRegistrations.WithLabelValues("ok").Inc()
	log.Debugf("user [%s] registered", creds.Username)

	if pkg.IsAPIRequest(r) {
		pkg.WriteJSON(w, successResponse{Success: true}, http.StatusCreated)
		return
	}
	http.Redirect(w, r, "/login?registered=1", http.StatusFound)
}

func (h *Handler) HandleGuest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.guest")
	defer span.End()

	if current := FromContext(ctx); current.Token != "" {
		if err := h.sessions.Destroy(ctx, current.Token); err != nil {
			log.Warnf("guest entry, destroy previous session: %s", err)
		}
	}

	session, err := h.sessions.StartGuest(ctx, time.Now())
	if err == nil {
		err = h.cookies.Set(w, r, session.Token)
	}
	if err != nil {
		log.Errorf("guest entry: %s", err)
		if pkg.IsAPIRequest(r) {
			pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		views.Render(w, r, http.StatusInternalServerError, views.LoginPage(views.LoginView{
			Error: "Something went wrong, please try again.",
		}))
		return
	}

	if pkg.IsAPIRequest(r) {
		pkg.WriteJSON(w, successResponse{Success: true}, http.StatusOK)
		return
	}
	http.Redirect(w, r, "/home", http.StatusFound)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	session := FromContext(ctx)
	if session.Token != "" {
		if err := h.sessions.Destroy(ctx, session.Token); err != nil {
			log.Errorf("logout [%s]: %s", session.Username, err)
		}
	}
	if err := h.cookies.Clear(w, r); err != nil {
		log.Errorf("logout, clear cookie: %s", err)
	}

	if pkg.IsAPIRequest(r) {
		pkg.WriteJSON(w, successResponse{Success: true}, http.StatusOK)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func readCredentials(r *http.Request) (credentials, error) {
	var creds credentials
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			return credentials{}, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return credentials{}, err
		}
		creds.Username = r.Form.Get("username")
		creds.Password = r.Form.Get("password")
	}
	creds.Username = strings.TrimSpace(creds.Username)
	return creds, nil
}
