// Package server exposes the cached lunch payload over HTTP as JSON.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/evirtanen/lunchfeed/cache"
)

// Server serves the aggregate payload from the cache and lets callers force
// a refresh.
type Server struct {
	store *cache.Store
}

// New creates a Server over the given cache store.
func New(store *cache.Store) *Server {
	return &Server{store: store}
}

// ErrorResponse is the JSON envelope for error replies.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Handler builds the router with CORS, request IDs and access logging
// applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/restaurants", s.handleRestaurants).Methods(http.MethodGet)
	r.HandleFunc("/refresh", s.handleRefresh).Methods(http.MethodGet, http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	})

	return cors.Default().Handler(requestLog(r))
}

// handleRestaurants handles GET /api/restaurants: today's menus, served
// from the cache.
func (s *Server) handleRestaurants(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Get())
}

// handleRefresh handles /refresh: it drops the cache slot and serves a
// freshly scraped payload.
func (s *Server) handleRefresh(w http.ResponseWriter, _ *http.Request) {
	s.store.Invalidate()
	writeJSON(w, http.StatusOK, s.store.Get())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message},
	})
}

// requestLog tags every request with an ID and logs it on completion. A
// forced refresh can block for the full scrape, so the duration is worth
// logging.
func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("INFO: %s %s %s (%v)", id[:8], r.Method, r.URL.Path, time.Since(start))
	})
}
