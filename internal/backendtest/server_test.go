package backendtest

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blueprints/internal/blueprint"
)

func do(t *testing.T, s *Server, method, path, body string) int {
	t.Helper()
	req, err := http.NewRequest(method, s.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRoutes(t *testing.T) {
	s := New()
	defer s.Close()
	s.Seed(blueprint.Blueprint{Author: "ana maria", Name: "house", Points: []blueprint.Point{{X: 1, Y: 1}}})

	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/blueprints/ana%20maria", ""))
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/blueprints/nobody", ""))

	assert.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, "/blueprints", `{"author":"ana maria","name":"barn","points":[]}`))
	assert.Equal(t, http.StatusConflict, do(t, s, http.MethodPost, "/blueprints", `{"author":"ana maria","name":"barn","points":[]}`))
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/blueprints", `{"name":"barn"}`))

	assert.Equal(t, http.StatusAccepted, do(t, s, http.MethodPut, "/blueprints/ana%20maria/house", `{"name":"house","points":[{"x":2,"y":3}]}`))
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodPut, "/blueprints/ana%20maria/shed", `{"name":"shed","points":[]}`))

	bp, ok := s.Blueprint("ana maria", "house")
	require.True(t, ok)
	assert.Equal(t, []blueprint.Point{{X: 2, Y: 3}}, bp.Points)

	reqs := s.Requests()
	require.Len(t, reqs, 7)
	assert.Equal(t, "/blueprints/ana%20maria/house", reqs[5].Path)
	assert.JSONEq(t, `{"name":"house","points":[{"x":2,"y":3}]}`, string(reqs[5].Body))
}

func TestFailNextAppliesOnce(t *testing.T) {
	s := New()
	defer s.Close()
	s.Seed(blueprint.Blueprint{Author: "alice", Name: "square"})

	s.FailNext(http.MethodGet, http.StatusServiceUnavailable)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, s, http.MethodGet, "/blueprints/alice", ""))
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/blueprints/alice", ""))
}
