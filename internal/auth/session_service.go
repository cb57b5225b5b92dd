package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitstreak/internal/telemetry/tracing"
	"github.com/2beens/fitstreak/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitstreak-session||"
	tokensSetKey     = "fitstreak-sessions"
	tokenLength      = 35
)

var ErrSessionNotFound = errors.New("session not found")

type sessionRecord struct {
	Username  string `json:"username,omitempty"`
	Guest     bool   `json:"guest,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// SessionService keeps sessions in redis, each key expires with the session TTL.
// All tokens are also indexed in one set, so expired ones can be pruned.
type SessionService struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewSessionService(ttl time.Duration, redisClient *redis.Client) *SessionService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SessionService{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (s *SessionService) StartAuthenticated(ctx context.Context, username string, createdAt time.Time) (*Session, error) {
	if username == "" {
		return nil, errors.New("empty username")
	}
	return s.start(ctx, sessionRecord{Username: username, CreatedAt: createdAt.Unix()})
}

func (s *SessionService) StartGuest(ctx context.Context, createdAt time.Time) (*Session, error) {
	return s.start(ctx, sessionRecord{Guest: true, CreatedAt: createdAt.Unix()})
}

func (s *SessionService) start(ctx context.Context, record sessionRecord) (*Session, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.start")
	defer span.End()

	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	recordJson, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	sessionKey := sessionKeyPrefix + token
	if err := s.redisClient.Set(ctx, sessionKey, string(recordJson), s.ttl).Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("store session: %w", err)
	}

	// add token to the set of sessions
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("index session: %w", err)
	}

	return record.toSession(token), nil
}

func (s *SessionService) Get(ctx context.Context, token string) (*Session, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.get")
	defer span.End()

	if token == "" {
		return nil, ErrSessionNotFound
	}

	val, err := s.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		span.RecordError(err)
		return nil, err
	}

	var record sessionRecord
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return record.toSession(token), nil
}

func (s *SessionService) Destroy(ctx context.Context, token string) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.destroy")
	defer span.End()

	if err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		span.RecordError(err)
		return err
	}

	// remove token from the set of sessions
	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// ScanAndClean removes tokens whose session key already expired from the
// sessions set, and returns how many were removed.
func (s *SessionService) ScanAndClean(ctx context.Context) int {
	sessionTokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("!!! sessions, scan and clean, get sessions: %s", err)
		return 0
	}

	if len(sessionTokens) == 0 {
		log.Debugln("=> sessions, scan and clean abort, no sessions")
		return 0
	}

	log.Debugf("=> sessions, scan and clean [%d sessions] start ...", len(sessionTokens))
	removed := 0
	for _, token := range sessionTokens {
		exists, err := s.redisClient.Exists(ctx, sessionKeyPrefix+token).Result()
		if err != nil {
			log.Errorf("=> sessions, scan and clean token %s: %s", token, err)
			continue
		}
		if exists > 0 {
			continue
		}

		if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> sessions, clean token %s: %s", token, err)
			continue
		}
		removed++
	}

	return removed
}

func (r sessionRecord) toSession(token string) *Session {
	return &Session{
		Token:     token,
		Username:  r.Username,
		Guest:     r.Username == "" && r.Guest,
		CreatedAt: time.Unix(r.CreatedAt, 0),
	}
}
