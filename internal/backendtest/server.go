// Package backendtest serves an in-memory stand-in for the blueprints
// backend so clients can be exercised over real HTTP in tests.
package backendtest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"

	"blueprints/internal/blueprint"
)

// Request is one call the server received.
type Request struct {
	Method string
	Path   string
	Body   json.RawMessage
	ID     string
}

// Server is a fake backend. Blueprints are kept per author in creation order.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	byAuthor map[string][]blueprint.Blueprint
	requests []Request
	failures map[string]int
}

// New starts a fake backend. Call Close when done.
func New() *Server {
	s := &Server{
		byAuthor: make(map[string][]blueprint.Blueprint),
		failures: make(map[string]int),
	}
	r := chi.NewRouter()
	r.Use(s.record)
	r.Get("/blueprints/{author}", s.list)
	r.Post("/blueprints", s.create)
	r.Put("/blueprints/{author}/{name}", s.update)
	s.Server = httptest.NewServer(r)
	return s
}

// Seed stores blueprints as if they had been created.
func (s *Server) Seed(bps ...blueprint.Blueprint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, bp := range bps {
		bp.Points = blueprint.ClonePoints(bp.Points)
		s.byAuthor[bp.Author] = append(s.byAuthor[bp.Author], bp)
	}
}

// FailNext makes the next request with method answer status.
func (s *Server) FailNext(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = status
}

// Requests returns the calls received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Blueprint returns the stored blueprint, if any.
func (s *Server) Blueprint(author, name string) (blueprint.Blueprint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, bp := range s.byAuthor[author] {
		if bp.Name == name {
			return bp, true
		}
	}
	return blueprint.Blueprint{}, false
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body json.RawMessage
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Body:   body,
			ID:     r.Header.Get("X-Request-ID"),
		})
		status, fail := s.failures[r.Method]
		delete(s.failures, r.Method)
		s.mu.Unlock()

		if fail {
			http.Error(w, "injected failure", status)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	author := param(r, "author")
	s.mu.Lock()
	bps, ok := s.byAuthor[author]
	out := make([]blueprint.Blueprint, 0, len(bps))
	for _, bp := range bps {
		bp.Points = blueprint.ClonePoints(bp.Points)
		out = append(out, bp)
	}
	s.mu.Unlock()
	if !ok {
		http.Error(w, "author not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var bp blueprint.Blueprint
	if err := json.NewDecoder(r.Body).Decode(&bp); err != nil || bp.Author == "" || bp.Name == "" {
		http.Error(w, "invalid blueprint", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byAuthor[bp.Author] {
		if existing.Name == bp.Name {
			http.Error(w, "blueprint already exists", http.StatusConflict)
			return
		}
	}
	bp.Points = blueprint.ClonePoints(bp.Points)
	s.byAuthor[bp.Author] = append(s.byAuthor[bp.Author], bp)
	writeJSON(w, http.StatusCreated, bp)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	author, name := param(r, "author"), param(r, "name")
	var body struct {
		Name   string            `json:"name"`
		Points []blueprint.Point `json:"points"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid blueprint", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	bps := s.byAuthor[author]
	for i := range bps {
		if bps[i].Name == name {
			bps[i].Points = blueprint.ClonePoints(body.Points)
			writeJSON(w, http.StatusAccepted, bps[i])
			return
		}
	}
	http.Error(w, "blueprint not found", http.StatusNotFound)
}

func param(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
