package auth

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	log "github.com/sirupsen/logrus"
)

const cookieTokenKey = "token"

// CookieJar carries the session token in a signed cookie.
type CookieJar struct {
	store *sessions.CookieStore
	name  string
}

func NewCookieJar(name string, secret []byte, ttl time.Duration, secure bool) *CookieJar {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieJar{
		store: store,
		name:  name,
	}
}

// Token returns an empty string when the cookie is missing or tampered with.
func (j *CookieJar) Token(r *http.Request) string {
	session, err := j.store.Get(r, j.name)
	if err != nil {
		log.Debugf("session cookie: %s", err)
		return ""
	}
	token, _ := session.Values[cookieTokenKey].(string)
	return token
}

func (j *CookieJar) Set(w http.ResponseWriter, r *http.Request, token string) error {
	// a broken cookie still yields a new usable session
	session, _ := j.store.Get(r, j.name)
	session.Values[cookieTokenKey] = token
	return session.Save(r, w)
}

func (j *CookieJar) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := j.store.Get(r, j.name)
	delete(session.Values, cookieTokenKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
