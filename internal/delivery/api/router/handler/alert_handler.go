package handler

import (
	"log/slog"

	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/response"
	"market/internal/domain/entity"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC   usecase.AlertUsecase
	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// AlertHandler serves alert management and certificate checks.
type AlertHandler struct {
	alertUC   usecase.AlertUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC:   params.AlertUC,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// ListAlertsQuery filters the alert listing
type ListAlertsQuery struct {
	UserID            string   `query:"userId"`
	CertificationType string   `query:"certificationType" validate:"omitempty,oneof=globalGap grasp eco"`
	Status            []string `query:"status" validate:"omitempty,dive,oneof=new acknowledged resolved"`
}

// CreateAlertRequest represents the request body for a manual alert
type CreateAlertRequest struct {
	Type    string `json:"type" validate:"required,oneof=info warning error"`
	Title   string `json:"title" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
}

// UpdateAlertStatusRequest moves an alert along its handling states
type UpdateAlertStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new acknowledged resolved"`
}

// CheckCertificatesRequest limits a check to one user; an empty body checks every producer.
type CheckCertificatesRequest struct {
	UserID string `json:"userId,omitempty"`
}

// ListAlerts lists alerts. Non-admins only see their own.
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var query ListAlertsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert filter")
	}

	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	filter := entity.AlertFilter{
		UserID:            query.UserID,
		CertificationType: entity.CertificationType(query.CertificationType),
	}
	for _, status := range query.Status {
		filter.Statuses = append(filter.Statuses, entity.AlertStatus(status))
	}

	if !middleware.HasRole(c, entity.RoleAdmin) {
		filter.UserID = userID
	}

	alerts, err := h.alertUC.ListAlerts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, alerts)
}

// CreateAlert stores a manual alert
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	var req CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	alert, err := h.alertUC.AddAlert(c.Request().Context(), &entity.Alert{
		Type:    entity.AlertType(req.Type),
		Title:   req.Title,
		Message: req.Message,
		UserID:  req.UserID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, alert)
}

// UpdateAlertStatus acknowledges or resolves an alert
func (h *AlertHandler) UpdateAlertStatus(c echo.Context) error {
	var req UpdateAlertStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.alertUC.UpdateAlertStatus(c.Request().Context(), c.Param("id"), entity.AlertStatus(req.Status)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Alert status updated successfully")
}

// DeleteAlert removes an alert
func (h *AlertHandler) DeleteAlert(c echo.Context) error {
	if err := h.alertUC.DeleteAlert(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Alert deleted successfully")
}

// CheckCertificates runs the certificate expiry check for one user or for every producer.
// Partial failures are reported in the body rather than as an error status.
func (h *AlertHandler) CheckCertificates(c echo.Context) error {
	var req CheckCertificatesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check input")
	}

	ctx := c.Request().Context()

	if req.UserID == "" {
		summary, err := h.alertUC.SweepCertificates(ctx)
		if summary == nil {
			return response.HandleAppError(c, err)
		}

		return response.OK(c, summary)
	}

	user, err := h.profileUC.GetUserProfile(ctx, req.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if user == nil {
		return response.NotFound(c, "USER_NOT_FOUND", "User not found")
	}

	created, err := h.alertUC.CheckCertificateExpiration(ctx, user)
	result := &usecase.CheckSummary{Created: created}
	if user.IsProducer() {
		result.Producers = 1
	}
	if err != nil {
		result.Failures = []string{err.Error()}
	}

	return response.OK(c, result)
}
