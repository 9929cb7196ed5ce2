package web

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"telegram-gift-certificates/internal/infra/metrics"
	"telegram-gift-certificates/internal/usecase"
)

const defaultListLimit = 50

// Server exposes the ops surface: health, metrics and a small
// read-only operator API over recent orders and support tickets.
type Server struct {
	orders      *usecase.OrderUseCase
	support     *usecase.SupportUseCase
	auth        *AuthManager
	adminSecret string
	log         *zerolog.Logger
}

func NewServer(orders *usecase.OrderUseCase, support *usecase.SupportUseCase, auth *AuthManager, adminSecret string, log *zerolog.Logger) *Server {
	l := log.With().Str("component", "web").Logger()
	return &Server{
		orders:      orders,
		support:     support,
		auth:        auth,
		adminSecret: adminSecret,
		log:         &l,
	}
}

// Router builds the chi routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Group(func(r chi.Router) {
			r.Use(s.requireOperator)
			r.Get("/orders", s.handleOrders)
			r.Get("/tickets", s.handleTickets)
		})
	})
	return r
}

func (s *Server) requireOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.auth.FromRequest(r)
		if err != nil || claims.Role != operatorRole {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.adminSecret == "" {
		s.log.Error().Msg("admin secret is not configured")
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var body struct {
		Secret string `json:"secret"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if subtle.ConstantTimeCompare([]byte(body.Secret), []byte(s.adminSecret)) != 1 {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	token, err := s.auth.Issue(w)
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	orders, err := s.orders.ListRecent(ctx, listLimit(r))
	if err != nil {
		s.log.Error().Err(err).Msg("list orders failed")
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) handleTickets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	tickets, err := s.support.ListRecent(ctx, listLimit(r))
	if err != nil {
		s.log.Error().Err(err).Msg("list tickets failed")
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, tickets)
}

func listLimit(r *http.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			return n
		}
	}
	return defaultListLimit
}

func contextWithTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 10*time.Second)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
