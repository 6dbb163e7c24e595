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

// AuthorizationHandlerParams holds dependencies for AuthorizationHandler, injected by Fx.
type AuthorizationHandlerParams struct {
	fx.In

	AuthorizationUC usecase.AuthorizationUsecase
	Logger          *slog.Logger
}

// AuthorizationHandler serves product authorization endpoints.
type AuthorizationHandler struct {
	authorizationUC usecase.AuthorizationUsecase
	logger          *slog.Logger
}

// NewAuthorizationHandler is the constructor for AuthorizationHandler
func NewAuthorizationHandler(params AuthorizationHandlerParams) *AuthorizationHandler {
	return &AuthorizationHandler{
		authorizationUC: params.AuthorizationUC,
		logger:          params.Logger,
	}
}

// AuthorizationRequest names a producer and a product
type AuthorizationRequest struct {
	UserID    string `json:"userId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}

// ListAuthorizations lists grants. Admins may pass userId; others see their own.
func (h *AuthorizationHandler) ListAuthorizations(c echo.Context) error {
	userID, ok := h.subject(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	authorizations, err := h.authorizationUC.ListAuthorizations(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, authorizations)
}

// AuthorizedProducts lists the catalog entries a producer may offer
func (h *AuthorizationHandler) AuthorizedProducts(c echo.Context) error {
	userID, ok := h.subject(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	products, err := h.authorizationUC.AuthorizedProducts(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// Grant authorizes a producer for a product
func (h *AuthorizationHandler) Grant(c echo.Context) error {
	var req AuthorizationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid authorization input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authorizationUC.AddAuthorization(c.Request().Context(), req.UserID, req.ProductID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, response.MessageBody{Message: "Authorization added successfully"})
}

// Revoke removes every grant for a producer and product
func (h *AuthorizationHandler) Revoke(c echo.Context) error {
	userID, productID := c.Param("userId"), c.Param("productId")
	if err := h.authorizationUC.RemoveAuthorization(c.Request().Context(), userID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Authorization removed successfully")
}

func (h *AuthorizationHandler) subject(c echo.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return "", false
	}

	if requested := c.QueryParam("userId"); requested != "" && middleware.HasRole(c, entity.RoleAdmin) {
		return requested, true
	}

	return userID, true
}
