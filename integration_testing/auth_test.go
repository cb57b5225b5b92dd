//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"net/http"

	"github.com/2beens/fitstreak/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestRegisterAndLogin() {
	t := s.T()
	client := s.newClient()

	resp := s.do(client, http.MethodPost, "/register", creds{"alice", "secret"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, resp.Body["success"])

	var originalHash string
	require.NoError(t, s.DB.QueryRowContext(context.Background(),
		`SELECT password_hash FROM users WHERE username = $1`, "alice",
	).Scan(&originalHash))
	assert.NotEqual(t, "secret", originalHash)
	assert.True(t, pkg.CheckPasswordHash("secret", originalHash))

	// a second registration must not touch the stored account
	resp = s.do(client, http.MethodPost, "/register", creds{"alice", "other-password"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "username already taken", resp.Body["error"])

	var hashAfter string
	require.NoError(t, s.DB.QueryRowContext(context.Background(),
		`SELECT password_hash FROM users WHERE username = $1`, "alice",
	).Scan(&hashAfter))
	assert.Equal(t, originalHash, hashAfter)

	resp = s.do(client, http.MethodPost, "/login", creds{"alice", "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp = s.do(client, http.MethodPost, "/login", creds{"nobody", "secret"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(client, http.MethodPost, "/login", creds{"alice", "secret"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	status, body := s.getPage(client, "/home")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Hi, alice")
	assert.NotContains(t, body, "demo-banner")

	// logout drops the session, the app pages bounce back to login
	resp = s.do(client, http.MethodGet, "/logout", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Location)

	resp = s.do(client, http.MethodGet, "/home", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Location)
}

func (s *IntegrationTestSuite) TestRegister_Invalid() {
	t := s.T()
	client := s.newClient()

	resp := s.do(client, http.MethodPost, "/register", creds{"al", "secret"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = s.do(client, http.MethodPost, "/register", creds{"carol", "123"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestAnonymousAccess() {
	t := s.T()
	client := s.newClient()

	for _, path := range []string{"/home", "/workouts", "/calendar", "/achievements", "/profile"} {
		resp := s.do(client, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Location, path)
	}

	resp := s.do(client, http.MethodPost, "/api/workouts", map[string]int{"workoutId": 1})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	status, body := s.getPage(client, "/login")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Continue as guest")
}

func (s *IntegrationTestSuite) TestGuestAccess() {
	t := s.T()
	client := s.newClient()

	resp := s.do(client, http.MethodPost, "/guest", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/home", resp.Location)

	for _, path := range []string{"/home", "/workouts", "/calendar", "/achievements", "/profile"} {
		status, body := s.getPage(client, path)
		assert.Equal(t, http.StatusOK, status, path)
		assert.Contains(t, body, "Demo mode", path)
	}

	resp = s.do(client, http.MethodGet, "/api/progress", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), resp.Body["highest_completed"])

	resp = s.do(client, http.MethodPost, "/api/workouts", map[string]int{"workoutId": 1})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp = s.do(client, http.MethodPost, "/api/progress", map[string]int{"completed": 3})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
