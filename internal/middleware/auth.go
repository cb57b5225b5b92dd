package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitstreak/internal/auth"
	"github.com/2beens/fitstreak/internal/telemetry/tracing"
	"github.com/2beens/fitstreak/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type sessionGetter interface {
	Get(ctx context.Context, token string) (*auth.Session, error)
}

type tokenReader interface {
	Token(r *http.Request) string
}

type AuthMiddlewareHandler struct {
	sessions sessionGetter
	cookies  tokenReader
}

func NewAuthMiddlewareHandler(sessions sessionGetter, cookies tokenReader) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		sessions: sessions,
		cookies:  cookies,
	}
}

// LoadSession resolves the session cookie into the request context.
// It never rejects a request, unknown or expired tokens just mean anonymous.
func (h *AuthMiddlewareHandler) LoadSession() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.session")

			session := &auth.Session{}
			if token := h.cookies.Token(r); token != "" {
				loaded, err := h.sessions.Get(ctx, token)
				switch {
				case err == nil:
					session = loaded
				case errors.Is(err, auth.ErrSessionNotFound):
					log.Tracef("[session middleware] unknown token => %s", r.URL.Path)
				default:
					log.Errorf("[session middleware] load session => %s: %s", r.URL.Path, err)
					span.RecordError(err)
					span.SetStatus(codes.Error, "session-load-err")
				}
			}
			span.SetAttributes(attribute.String("session.state", session.State().String()))
			span.End()

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		})
	}
}

// RequireViewer lets guests and authenticated users through.
func RequireViewer() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth.FromContext(r.Context()).CanView() {
				next.ServeHTTP(w, r)
				return
			}

			log.Tracef("[viewer guard] anonymous => %s", r.URL.Path)
			if pkg.IsAPIRequest(r) {
				pkg.WriteJSONError(w, "not logged in", http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, "/login", http.StatusFound)
		})
	}
}

// RequireAuthenticated guards the mutating endpoints, guests are rejected too.
func RequireAuthenticated() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth.FromContext(r.Context()).IsAuthenticated() {
				next.ServeHTTP(w, r)
				return
			}

			log.Tracef("[auth guard] unauthorized => %s", r.URL.Path)
			if pkg.IsAPIRequest(r) {
				pkg.WriteJSONError(w, "not logged in", http.StatusUnauthorized)
				return
			}
			http.Error(w, "not logged in", http.StatusUnauthorized)
		})
	}
}
