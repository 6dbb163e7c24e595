package handler

import (
	"net/http"

	"market/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Tracker *metrics.ActivityTracker
}

// HealthHandler reports liveness and in-flight store calls.
type HealthHandler struct {
	tracker *metrics.ActivityTracker
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{tracker: params.Tracker}
}

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status   string         `json:"status"`
	InFlight map[string]int `json:"inFlight"`
}

// HealthCheck reports liveness together with the in-flight calls per store
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		InFlight: h.tracker.Snapshot(),
	})
}
