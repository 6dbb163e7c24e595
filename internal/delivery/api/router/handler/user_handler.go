package handler

import (
	"log/slog"

	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/response"
	"market/internal/domain/entity"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// UserHandler serves profile, user administration and producer search endpoints.
type UserHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// LocationRequest is a map point
type LocationRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// AddressRequest is a postal address with an optional map point
type AddressRequest struct {
	Street     string           `json:"street" validate:"max=200"`
	City       string           `json:"city" validate:"max=100"`
	State      string           `json:"state" validate:"max=100"`
	Country    string           `json:"country" validate:"max=100"`
	PostalCode string           `json:"postalCode" validate:"max=20"`
	Location   *LocationRequest `json:"location,omitempty"`
}

// UpdateProfileRequest represents the editable profile fields
type UpdateProfileRequest struct {
	Name           *string                                            `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	CompanyName    *string                                            `json:"companyName,omitempty" validate:"omitempty,max=200"`
	VATNumber      *string                                            `json:"vatNumber,omitempty" validate:"omitempty,max=50"`
	Address        *AddressRequest                                    `json:"address,omitempty"`
	Certifications map[entity.CertificationType]*entity.Certification `json:"certifications,omitempty"`
}

// ListUsersQuery filters the user listing
type ListUsersQuery struct {
	Role string `query:"role" validate:"omitempty,oneof=admin producer supermarket"`
}

// NearbyProducersQuery is a location search around a point
type NearbyProducersQuery struct {
	Lat    float64 `query:"lat" validate:"latitude"`
	Lng    float64 `query:"lng" validate:"longitude"`
	Radius float64 `query:"radius" validate:"gte=0"`
}

func (req *UpdateProfileRequest) update() *entity.ProfileUpdate {
	update := &entity.ProfileUpdate{
		Name:           req.Name,
		CompanyName:    req.CompanyName,
		VATNumber:      req.VATNumber,
		Certifications: req.Certifications,
	}

	if req.Address != nil {
		update.Address = &entity.Address{
			Street:     req.Address.Street,
			City:       req.Address.City,
			State:      req.Address.State,
			Country:    req.Address.Country,
			PostalCode: req.Address.PostalCode,
		}
		if loc := req.Address.Location; loc != nil {
			update.Address.Location = &orb.Point{loc.Lng, loc.Lat}
		}
	}

	return update
}

// GetMe returns the caller's profile
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.profileUC.GetUserProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if user == nil {
		return response.NotFound(c, "USER_NOT_FOUND", "User profile not found")
	}

	return response.OK(c, user)
}

// UpdateMe changes the caller's editable profile fields
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.UpdateUserProfile(c.Request().Context(), userID, req.update())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// ListUsers lists accounts, optionally by role
func (h *UserHandler) ListUsers(c echo.Context) error {
	var query ListUsersQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user filter")
	}

	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	users, err := h.profileUC.ListUsers(c.Request().Context(), entity.Role(query.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, users)
}

// GetUser returns any user's profile
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.profileUC.GetUserProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if user == nil {
		return response.NotFound(c, "USER_NOT_FOUND", "User not found")
	}

	return response.OK(c, user)
}

// DeleteUser removes a user with their authorizations and offers
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.profileUC.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "User deleted successfully")
}

// NearbyProducers lists producers around a point, nearest first
func (h *UserHandler) NearbyProducers(c echo.Context) error {
	var query NearbyProducersQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location query")
	}

	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	producers, err := h.profileUC.NearbyProducers(c.Request().Context(), &usecase.NearbyQuery{
		Latitude:  query.Lat,
		Longitude: query.Lng,
		Radius:    query.Radius,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, producers)
}
