//go:build integration_test || all_tests

package integration_testing

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	StatusCode int
	Body       map[string]any
	Location   string
}

// do sends body as JSON when it is not nil and decodes a JSON answer.
func (s *IntegrationTestSuite) do(client *http.Client, method, path string, body any) apiResponse {
	t := s.T()
	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "fitstreak-integration-test")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result := apiResponse{
		StatusCode: resp.StatusCode,
		Location:   resp.Header.Get("Location"),
	}
	if len(respBytes) > 0 && bytes.HasPrefix(bytes.TrimSpace(respBytes), []byte("{")) {
		require.NoError(t, json.Unmarshal(respBytes, &result.Body))
	}
	return result
}

func (s *IntegrationTestSuite) getPage(client *http.Client, path string) (int, string) {
	resp, err := client.Get(serverEndpoint + path)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	return resp.StatusCode, string(body)
}

type creds struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *IntegrationTestSuite) registerAndLogin(username, password string) *http.Client {
	client := s.newClient()
	resp := s.do(client, http.MethodPost, "/register", creds{username, password})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	resp = s.do(client, http.MethodPost, "/login", creds{username, password})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	return client
}
