package transporthttp

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"animesh/internal/schedule"
)

const maxDays = 14

// Runner executes schedule lookups.
type Runner interface {
	Run(ctx context.Context, req schedule.Request) (*schedule.Result, error)
}

type Server struct {
	planner         Runner
	defaultTimezone string
	logger          *zap.Logger
}

func NewServer(planner Runner, defaultTimezone string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		planner:         planner,
		defaultTimezone: defaultTimezone,
		logger:          logger,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.withLogging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.health)
	// AniList allows roughly 90 requests per minute per client.
	r.With(httprate.LimitByIP(30, time.Minute)).Get("/schedule", s.handleSchedule)
	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	req, errMsg := s.parseRequest(r)
	if errMsg != "" {
		s.writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	result, err := s.planner.Run(ctx, req)
	if err != nil {
		s.logger.Error("schedule lookup failed", zap.Error(err))
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) parseRequest(r *http.Request) (schedule.Request, string) {
	q := r.URL.Query()
	req := schedule.Request{
		Day:      q.Get("day"),
		Days:     1,
		Timezone: q.Get("timezone"),
	}
	if req.Timezone == "" {
		req.Timezone = s.defaultTimezone
	}

	if raw := q.Get("days"); raw != "" {
		days, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return req, "days must be a non-negative integer"
		}
		if days > maxDays {
			return req, "days must not exceed " + strconv.Itoa(maxDays)
		}
		req.Days = uint32(days)
	}
	return req, ""
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Debug("write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
