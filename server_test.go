package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	config := defaultConfig()
	config.Password = "secret"
	return NewServer(config, NewRunner(zap.NewNop()), DirSource("examples"), nil, zap.NewNop())
}

func do(t *testing.T, s *Server, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestServerDays(t *testing.T) {
	s := newTestServer(t)
	code, body := do(t, s, httptest.NewRequest(http.MethodGet, "/days", nil))
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[1,2,3]`, string(body))
}

func TestServerSolveBody(t *testing.T) {
	s := newTestServer(t)
	code, body := do(t, s, httptest.NewRequest(http.MethodPost, "/solve/2", strings.NewReader("11-22,95-115")))
	require.Equal(t, http.StatusOK, code, string(body))

	var res solveResponse
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Empty(t, res.Run)
	assert.Equal(t, 2, res.Day)
	assert.Equal(t, answer(132), res.PartOne.Answer)
	assert.False(t, res.PartTwo.Answer.Solved)
}

func TestServerSolveSource(t *testing.T) {
	s := newTestServer(t)
	code, body := do(t, s, httptest.NewRequest(http.MethodGet, "/solve/3", nil))
	require.Equal(t, http.StatusOK, code, string(body))

	var res solveResponse
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, answer(357), res.PartOne.Answer)
}

func TestServerErrors(t *testing.T) {
	s := newTestServer(t)
	for _, tc := range []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/solve/2", "11-x", http.StatusBadRequest},
		{http.MethodPost, "/solve/abc", "", http.StatusBadRequest},
		{http.MethodPost, "/solve/0", "", http.StatusBadRequest},
		{http.MethodPost, "/solve/24", "", http.StatusNotFound},
		{http.MethodGet, "/solve/24", "", http.StatusNotFound},
		{http.MethodGet, "/answers", "", http.StatusForbidden},
		{http.MethodGet, "/answers/2", "", http.StatusForbidden},
	} {
		code, body := do(t, s, httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))
		assert.Equal(t, tc.want, code, "%s %s: %s", tc.method, tc.path, body)

		var fe struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(body, &fe))
		assert.Equal(t, tc.want, fe.Code)
	}
}

func TestServerAnswersWithoutStorage(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/answers", "/answers/2"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "secret"})
		code, _ := do(t, s, req)
		assert.Equal(t, http.StatusServiceUnavailable, code, path)
	}
}
