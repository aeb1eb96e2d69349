package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sahayata/internal/domain"
	cataloguc "github.com/kailas-cloud/sahayata/internal/usecase/catalog"
	chatuc "github.com/kailas-cloud/sahayata/internal/usecase/chat"
	eligibilityuc "github.com/kailas-cloud/sahayata/internal/usecase/eligibility"
	healthuc "github.com/kailas-cloud/sahayata/internal/usecase/health"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the sahayata HTTP API.
type Server struct {
	chat          *chatuc.Service
	eligibility   *eligibilityuc.Service
	catalog       *cataloguc.Service
	health        *healthuc.Service
	version       string
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	chat *chatuc.Service,
	eligibility *eligibilityuc.Service,
	catalog *cataloguc.Service,
	health *healthuc.Service,
	version string,
	logger *zap.Logger,
) *Server {
	s := &Server{
		chat:        chat,
		eligibility: eligibility,
		catalog:     catalog,
		health:      health,
		version:     version,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrSchemeNotFound, http.StatusNotFound, ErrorCodeSchemeNotFound),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrInvalidProfile, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable, ErrorCodeStoreUnavailable),
	}
	return s
}

// Routes registers every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Root)
	r.Get("/health", s.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/chatbot/chat", s.Chat)
		r.Get("/chatbot/health", s.ChatHealth)

		r.Route("/schemes", func(r chi.Router) {
			r.Get("/statistics", s.Statistics)
			r.Get("/search", s.SearchSchemes)
			r.Get("/category/{category}", s.SchemesByCategory)
			r.Post("/check-eligibility", s.CheckEligibility)
			r.Get("/{id}", s.GetScheme)
		})
	})
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

// safeDomainMessage returns the client-facing text of a domain error.
// Validation errors carry their detail; everything else only the sentinel.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidQuery) || errors.Is(err, domain.ErrInvalidProfile) {
		return err.Error()
	}
	for _, s := range []error{domain.ErrSchemeNotFound, domain.ErrStoreUnavailable} {
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

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
