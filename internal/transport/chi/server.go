package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/fixerhub/internal/domain"
	"github.com/kailas-cloud/fixerhub/internal/logger"
	assistantuc "github.com/kailas-cloud/fixerhub/internal/usecase/assistant"
	directoryuc "github.com/kailas-cloud/fixerhub/internal/usecase/directory"
	healthuc "github.com/kailas-cloud/fixerhub/internal/usecase/health"
	searchuc "github.com/kailas-cloud/fixerhub/internal/usecase/search"
	"github.com/kailas-cloud/fixerhub/internal/version"
)

// APIPrefix is the mount point of the versioned API.
const APIPrefix = "/api/v1"

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the fixerhub HTTP API.
type Server struct {
	directory     *directoryuc.Service
	search        *searchuc.Service
	assistant     *assistantuc.Service
	health        *healthuc.Service
	limiter       *RateLimiter
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	directory *directoryuc.Service,
	search *searchuc.Service,
	assistant *assistantuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		directory: directory,
		search:    search,
		assistant: assistant,
		health:    health,
		logger:    logger,
	}
	// Order matters: specific not-found sentinels before the generic one.
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrProfessionalNotFound, http.StatusNotFound, ErrorCodeProfessionalNotFound),
		sentinelHandler(domain.ErrCategoryNotFound, http.StatusNotFound, ErrorCodeCategoryNotFound),
		sentinelHandler(domain.ErrConversationNotFound, http.StatusNotFound, ErrorCodeConversationNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeNotFound),
		sentinelHandler(domain.ErrConversationClosed, http.StatusConflict, ErrorCodeConversationClosed),
		validationHandler,
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests, ErrorCodeRateLimited),
	}
	return s
}

// WithRateLimiter applies a per-client limiter to the assistant routes.
func (s *Server) WithRateLimiter(l *RateLimiter) *Server {
	s.limiter = l
	return s
}

// Register mounts all routes on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/professionals/search", s.SearchProfessionals)
		r.Get("/professionals", s.ListProfessionals)
		r.Get("/professionals/{id}", s.GetProfessional)
		r.Put("/professionals/{id}", s.PutProfessional)
		r.Delete("/professionals/{id}", s.DeleteProfessional)

		r.Get("/categories", s.ListCategories)
		r.Put("/categories/{id}", s.PutCategory)

		r.Route("/assistant/conversations", func(r chi.Router) {
			if s.limiter != nil {
				r.Use(s.limiter.Middleware)
			}
			r.Post("/", s.StartConversation)
			r.Get("/{id}", s.GetConversation)
			r.Delete("/{id}", s.DismissConversation)
			r.Post("/{id}/messages", s.SendMessage)
			r.Post("/{id}/selections", s.SelectSuggestion)
		})
	})
}

// Handler returns a router with all routes registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.Register(r)
	return r
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Version: version.String(),
		Checks:  checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrProfessionalNotFound,
		domain.ErrCategoryNotFound,
		domain.ErrConversationNotFound,
		domain.ErrNotFound,
		domain.ErrConversationClosed,
		domain.ErrRateLimited,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// validationHandler reports validation failures with their reason, which never carries internals.
func validationHandler(w http.ResponseWriter, err error, _ string) bool {
	if !errors.Is(err, domain.ErrValidation) {
		return false
	}
	msg := err.Error()
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		msg = ve.Error()
	}
	writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContextOr(r.Context(), s.logger)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
