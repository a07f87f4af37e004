// Package httpapi exposes the question-answering service over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/custodia-labs/murshid/internal/core/domain"
	"github.com/custodia-labs/murshid/internal/core/ports/driving"
	"github.com/custodia-labs/murshid/internal/logger"
)

// Default server timeouts.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 180 * time.Second
)

// Server serves the HTTP API.
type Server struct {
	query    driving.QueryService
	status   driving.StatusService
	feedback driving.FeedbackService
	server   *http.Server
	listener net.Listener
}

// New creates a server for the given services.
func New(query driving.QueryService, status driving.StatusService, feedback driving.FeedbackService) *Server {
	return &Server{
		query:    query,
		status:   status,
		feedback: feedback,
	}
}

// queryRequest is the POST /query request body.
type queryRequest struct {
	Query string `json:"query"`
}

// sourceResponse is one retrieved chunk in a query response.
type sourceResponse struct {
	Content    string  `json:"content"`
	Page       int     `json:"page"`
	Similarity float64 `json:"similarity"`
}

// queryResponse is the POST /query response body.
type queryResponse struct {
	Answer   string           `json:"answer"`
	Sources  []sourceResponse `json:"sources"`
	FollowUp string           `json:"follow_up,omitempty"`
}

// feedbackRequest is the POST /feedback request body. The rating
// arrives as a boolean named "feedback": true means the answer helped.
type feedbackRequest struct {
	Query   string `json:"query"`
	Answer  string `json:"answer"`
	Helpful bool   `json:"feedback"`
	Comment string `json:"comment"`
}

// statusResponse is the GET / response body.
type statusResponse struct {
	Ready          bool   `json:"ready"`
	Document       string `json:"document"`
	Chunks         int    `json:"chunks"`
	EmbeddingModel string `json:"embedding_model,omitempty"`
	LLMModel       string `json:"llm_model,omitempty"`
}

// errorResponse is the body of any non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/query", s.handleQuery)
	mux.HandleFunc("/feedback", s.handleFeedback)
	mux.HandleFunc("/", s.handleStatus)
	return mux
}

// Start begins serving on addr. It returns once the listener is bound;
// serving continues in the background until Shutdown.
func (s *Server) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.listener = listener

	s.server = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("HTTP server stopped: %v", err)
		}
	}()

	logger.Info("HTTP API listening on %s", listener.Addr())
	return nil
}

// Addr returns the bound listen address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// handleQuery answers POST /query.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := s.query.Ask(r.Context(), req.Query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Warn("query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := queryResponse{
		Answer:   answer.Text,
		Sources:  make([]sourceResponse, 0, len(answer.Sources)),
		FollowUp: answer.FollowUp,
	}
	for _, src := range answer.Sources {
		resp.Sources = append(resp.Sources, sourceResponse{
			Content:    src.Chunk.Content,
			Page:       src.Chunk.Page,
			Similarity: src.Similarity,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleFeedback records POST /feedback.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record := domain.FeedbackRecord{
		Query:     req.Query,
		Answer:    req.Answer,
		Helpful:   req.Helpful,
		Comment:   req.Comment,
		Timestamp: time.Now().UTC(),
	}

	if err := s.feedback.Submit(r.Context(), record); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Warn("feedback submission failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleStatus answers GET / with service readiness.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	status := s.status.Status(r.Context())
	writeJSON(w, http.StatusOK, statusResponse{
		Ready:          status.Ready,
		Document:       status.DocumentPath,
		Chunks:         status.ChunkCount,
		EmbeddingModel: status.EmbeddingModel,
		LLMModel:       status.LLMModel,
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorResponse{Error: message})
}
