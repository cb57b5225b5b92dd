package auth

import (
	"context"
	"time"
)

type State int

const (
	StateAnonymous State = iota
	StateGuest
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateGuest:
		return "guest"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Session is the per-browser state. Username and Guest are never both set.
type Session struct {
	Token     string
	Username  string
	Guest     bool
	CreatedAt time.Time
}

func (s *Session) State() State {
	switch {
	case s == nil || s.Token == "":
		return StateAnonymous
	case s.Username != "":
		return StateAuthenticated
	case s.Guest:
		return StateGuest
	default:
		return StateAnonymous
	}
}

func (s *Session) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

func (s *Session) IsGuest() bool {
	return s.State() == StateGuest
}

// CanView reports whether the session may see the app pages.
func (s *Session) CanView() bool {
	state := s.State()
	return state == StateGuest || state == StateAuthenticated
}

type sessionCtxKey struct{}

func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

// FromContext never returns nil, a missing session is an anonymous one.
func FromContext(ctx context.Context) *Session {
	if session, ok := ctx.Value(sessionCtxKey{}).(*Session); ok && session != nil {
		return session
	}
	return &Session{}
}
