// Package middleware holds the API-specific echo middleware.
package middleware

import (
	"log/slog"
	"strings"

	"market/internal/delivery/api/response"
	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	"market/internal/domain/service"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	keyUserID   = "userID"
	keyRoles    = "roles"
	keyIdentity = "identity"

	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Verifier     service.IdentityVerifier `optional:"true"`
	ProfileUC    usecase.ProfileUsecase
	Logger       *slog.Logger
}

// AuthMiddleware authenticates requests with either a local access token or, when an
// identity verifier is configured, a Firebase ID token.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	verifier  service.IdentityVerifier
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:  params.TokenService,
		verifier:  params.Verifier,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// Authenticate validates the bearer token and stores the caller's id and roles on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || token == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		if claims, err := m.tokenSvc.ValidateToken(token); err == nil {
			authenticated(c, claims.UserID(), claims.Roles)

			return next(c)
		}

		if m.verifier == nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.VerifyIDToken(ctx, token)
		if err != nil {
			deliverycontext.LoggerFrom(ctx, m.logger).Debug("ID token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Roles come from the stored profile; a first login has none until the session is opened.
		user, err := m.profileUC.GetUserProfile(ctx, identity.UID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		var roles []string
		if user != nil {
			roles = []string{user.Role.String()}
		}

		authenticated(c, identity.UID, roles)
		c.Set(keyIdentity, identity)

		return next(c)
	}
}

// authenticated records the caller on c and on the request context, where use cases and their
// loggers pick up the user id.
func authenticated(c echo.Context, userID string, roles []string) {
	c.Set(keyUserID, userID)
	c.Set(keyRoles, roles)

	req := c.Request()
	c.SetRequest(req.WithContext(deliverycontext.WithUserID(req.Context(), userID)))
}

// RequireRole allows the request when the caller holds any of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			for _, role := range roles {
				if held.Contains(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied for this role")
		}
	}
}

// GetUserID returns the authenticated user's id.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(keyUserID).(string)

	return userID, ok && userID != ""
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(keyRoles).([]string)
	if !ok {
		return nil, false
	}

	return entity.RolesFromStrings(roles), true
}

// HasRole reports whether the authenticated user holds role.
func HasRole(c echo.Context, role entity.Role) bool {
	roles, _ := GetRoles(c)

	return roles.Contains(role)
}

// GetIdentity returns the verified external identity, present only for ID token logins.
func GetIdentity(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(keyIdentity).(*service.Identity)

	return identity, ok && identity != nil
}
