package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-MentorBooking/internal/api/handlers"
)

const (
	readinessTimeout = 2 * time.Second
	checkTimeout     = time.Second
)

type dependency struct {
	name     string
	check    CheckFunc
	critical bool
}

type Handler struct {
	service string
	deps    []dependency
	logger  Logger
}

func NewHandler(service string, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Critical добавляет зависимость, без которой сервис не готов (status=error, 503)
func (h *Handler) Critical(name string, check CheckFunc) *Handler {
	h.deps = append(h.deps, dependency{name: name, check: check, critical: true})
	return h
}

// Optional добавляет зависимость, отказ которой переводит сервис в status=degraded
func (h *Handler) Optional(name string, check CheckFunc) *Handler {
	h.deps = append(h.deps, dependency{name: name, check: check})
	return h
}

// Liveness GET /health/live
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, LivenessResponse{Status: StatusOK, Service: h.service})
}

// Readiness GET /health/ready
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	status := StatusOK
	deps := make(map[string]string, len(h.deps))

	for _, dep := range h.deps {
		checkCtx, checkCancel := context.WithTimeout(ctx, checkTimeout)
		err := dep.check(checkCtx)
		checkCancel()

		if err == nil {
			deps[dep.name] = depOK
			continue
		}

		h.logger.Warn("GET /health/ready - %s is down: %v", dep.name, err)
		deps[dep.name] = depDown
		switch {
		case dep.critical:
			status = StatusError
		case status == StatusOK:
			status = StatusDegraded
		}
	}

	code := http.StatusOK
	if status == StatusError {
		code = http.StatusServiceUnavailable
	}

	handlers.RespondJSON(w, code, ReadinessResponse{
		Status:       status,
		Service:      h.service,
		Dependencies: deps,
	})
}
