// Package server exposes the solver over HTTP.
//
//	POST /solve      body: PNG bytes; query: alphabet, refresh
//	GET  /healthz
//	GET  /version
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/ventriglisse/pkg/buildinfo"
	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
	"github.com/matzehuels/ventriglisse/pkg/pipeline"
	"github.com/matzehuels/ventriglisse/pkg/session"
)

// MaxImageBytes bounds the request body of /solve.
const MaxImageBytes = 8 << 20

// Server holds the HTTP handlers.
type Server struct {
	solver session.Solver
	opts   pipeline.Options
	logger *log.Logger
}

// New creates a server. opts are the defaults for every request; the query
// string may override the alphabet and force a refresh.
func New(solver session.Solver, opts pipeline.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{solver: solver, opts: opts, logger: logger}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ok\n")
	})
	r.Get("/version", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, buildinfo.Get())
	})
	r.Post("/solve", s.handleSolve)
	return r
}

// SolveResponse is the body of a successful /solve.
type SolveResponse struct {
	Moves  string `json:"moves"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
	Nodes  int    `json:"nodes"`
	Edges  int    `json:"edges"`
	Cached bool   `json:"cached"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	opts := pipeline.Options{Layout: s.opts.Layout, Alphabet: s.opts.Alphabet}
	q := r.URL.Query()
	if a := q.Get("alphabet"); a != "" {
		opts.Alphabet = a
	}
	if v := q.Get("refresh"); v != "" {
		refresh, err := strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, verrors.New(verrors.ErrCodeInvalidInput, "refresh must be a boolean"))
			return
		}
		opts.Refresh = refresh
	}
	opts.Logger = s.logger.With("request_id", middleware.GetReqID(r.Context()))

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxImageBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, verrors.Wrap(verrors.ErrCodeInvalidInput, err, "image too large"))
			return
		}
		s.writeError(w, r, http.StatusBadRequest, verrors.Wrap(verrors.ErrCodeInvalidInput, err, "read body"))
		return
	}
	if len(data) == 0 {
		s.writeError(w, r, http.StatusBadRequest, verrors.New(verrors.ErrCodeInvalidInput, "empty body, expected a PNG image"))
		return
	}

	res, err := s.solver.Execute(r.Context(), data, opts)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, SolveResponse{
		Moves:  res.Moves,
		Rows:   res.Stats.Rows,
		Cols:   res.Stats.Cols,
		Nodes:  res.Stats.Nodes,
		Edges:  res.Stats.Edges,
		Cached: res.Cached,
	})
}

func statusFor(err error) int {
	switch verrors.GetCode(err) {
	case verrors.ErrCodeMalformedImage, verrors.ErrCodePathNotFound:
		return http.StatusUnprocessableEntity
	case verrors.ErrCodeInvalidInput, verrors.ErrCodeInvalidAlphabet, verrors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	code := verrors.GetCode(err)
	if code == "" {
		code = verrors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("solve failed", "request_id", middleware.GetReqID(r.Context()), "err", err)
	}
	writeJSON(w, status, ErrorResponse{Code: string(code), Error: verrors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).Round(time.Microsecond),
				"request_id", middleware.GetReqID(r.Context()))
		}()
		next.ServeHTTP(ww, r)
	})
}

// HTTPServer wraps the handler for addr. The caller owns Shutdown.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
