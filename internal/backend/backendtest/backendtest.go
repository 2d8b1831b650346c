// Package backendtest provides a recording fake of the library backend for tests.
package backendtest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/taibuivan/librarydesk/internal/backend"
)

// Request is one request received by the fake.
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// Decode unmarshals the request body into dst, failing the test on error.
func (r Request) Decode(t testing.TB, dst any) {
	t.Helper()
	if err := json.Unmarshal(r.Body, dst); err != nil {
		t.Fatalf("backendtest: decode %s %s: %v", r.Method, r.Path, err)
	}
}

type reply struct {
	status int
	body   any
}

// Server is an httptest server answering with canned replies.
//
// Unconfigured GETs answer 200 with an empty JSON list; unconfigured writes answer
// 200 with no body.
type Server struct {
	server *httptest.Server

	mu       sync.Mutex
	replies  map[string]reply
	requests []Request
}

// New starts a fake backend that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{replies: make(map[string]reply)}
	s.server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.server.Close)
	return s
}

// Reply sets the answer to method path.
func (s *Server) Reply(method, path string, status int, body any) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[method+" "+path] = reply{status: status, body: body}
	return s
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Writes returns the received requests other than GET.
func (s *Server) Writes() []Request {
	var writes []Request
	for _, r := range s.Requests() {
		if r.Method != http.MethodGet {
			writes = append(writes, r)
		}
	}
	return writes
}

// Count returns how many times method path was requested.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// URL returns the base URL of the fake.
func (s *Server) URL() string { return s.server.URL }

// Client returns a backend client pointed at the fake.
func (s *Server) Client() *backend.Client {
	return backend.NewClient(s.server.URL, 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *Server) serve(writer http.ResponseWriter, request *http.Request) {
	body, _ := io.ReadAll(request.Body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{Method: request.Method, Path: request.URL.Path, Body: body})
	answer, ok := s.replies[request.Method+" "+request.URL.Path]
	s.mu.Unlock()

	if !ok {
		if request.Method != http.MethodGet {
			writer.WriteHeader(http.StatusOK)
			return
		}
		answer = reply{status: http.StatusOK, body: []any{}}
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(answer.status)
	if answer.body != nil {
		_ = json.NewEncoder(writer).Encode(answer.body)
	}
}
