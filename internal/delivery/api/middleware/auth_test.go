package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	mockservice "market/internal/mocks/service"
	mockusecase "market/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	tokens   *mockservice.MockTokenService
	verifier *mockservice.MockIdentityVerifier
	profiles *mockusecase.MockProfileUsecase
	auth     *AuthMiddleware
}

func newAuthFixture(t *testing.T, withVerifier bool) *authFixture {
	f := &authFixture{
		tokens:   mockservice.NewMockTokenService(t),
		profiles: mockusecase.NewMockProfileUsecase(t),
	}

	params := AuthMiddlewareParams{
		TokenService: f.tokens,
		ProfileUC:    f.profiles,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if withVerifier {
		f.verifier = mockservice.NewMockIdentityVerifier(t)
		params.Verifier = f.verifier
	}

	f.auth = NewAuthMiddleware(params)

	return f
}

type caller struct {
	UserID   string
	Roles    []string
	Identity bool
}

// serve runs a request through Authenticate and the given role guard and returns what the handler saw.
func (f *authFixture) serve(t *testing.T, header string, guards ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, *caller) {
	t.Helper()

	var seen *caller
	handler := func(c echo.Context) error {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		roles, _ := GetRoles(c)
		_, hasIdentity := GetIdentity(c)
		seen = &caller{UserID: userID, Roles: roles.ToStrings(), Identity: hasIdentity}
		assert.Equal(t, userID, deliverycontext.UserIDFrom(c.Request().Context()))

		return c.NoContent(http.StatusNoContent)
	}

	for i := len(guards) - 1; i >= 0; i-- {
		handler = guards[i](handler)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	err := f.auth.Authenticate(handler)(echo.New().NewContext(req, rec))
	require.NoError(t, err)

	return rec, seen
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("local access token", func(t *testing.T) {
		f := newAuthFixture(t, false)
		f.tokens.EXPECT().ValidateToken("good").Return(&service.Claims{
			Roles:            []string{"producer"},
			RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
		}, nil)

		rec, seen := f.serve(t, "Bearer good")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, &caller{UserID: "u1", Roles: []string{"producer"}}, seen)
	})

	t.Run("missing and malformed headers", func(t *testing.T) {
		f := newAuthFixture(t, false)

		rec, seen := f.serve(t, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, seen)

		rec, seen = f.serve(t, "Basic dXNlcjpwdw==")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, seen)
	})

	t.Run("invalid token without verifier", func(t *testing.T) {
		f := newAuthFixture(t, false)
		f.tokens.EXPECT().ValidateToken("bad").Return(nil, domainerrors.ErrTokenInvalid)

		rec, seen := f.serve(t, "Bearer bad")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, seen)
	})

	t.Run("firebase token of a known user", func(t *testing.T) {
		f := newAuthFixture(t, true)
		f.tokens.EXPECT().ValidateToken("id-token").Return(nil, domainerrors.ErrTokenInvalid)
		f.verifier.EXPECT().VerifyIDToken(mock.Anything, "id-token").
			Return(&service.Identity{UID: "fb-1", Email: "ana@example.com"}, nil)
		f.profiles.EXPECT().GetUserProfile(mock.Anything, "fb-1").
			Return(&entity.User{ID: "fb-1", Role: entity.RoleAdmin}, nil)

		rec, seen := f.serve(t, "Bearer id-token", f.auth.RequireRole(entity.RoleAdmin))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, &caller{UserID: "fb-1", Roles: []string{"admin"}, Identity: true}, seen)
	})

	t.Run("firebase first login has no role yet", func(t *testing.T) {
		f := newAuthFixture(t, true)
		f.tokens.EXPECT().ValidateToken("id-token").Return(nil, domainerrors.ErrTokenInvalid)
		f.verifier.EXPECT().VerifyIDToken(mock.Anything, "id-token").Return(&service.Identity{UID: "fb-2"}, nil)
		f.profiles.EXPECT().GetUserProfile(mock.Anything, "fb-2").Return(nil, nil)

		rec, seen := f.serve(t, "Bearer id-token", f.auth.RequireRole(entity.RoleProducer))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, seen)
	})

	t.Run("rejected firebase token", func(t *testing.T) {
		f := newAuthFixture(t, true)
		f.tokens.EXPECT().ValidateToken("expired").Return(nil, domainerrors.ErrTokenInvalid)
		f.verifier.EXPECT().VerifyIDToken(mock.Anything, "expired").Return(nil, assert.AnError)

		rec, seen := f.serve(t, "Bearer expired")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, seen)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	f := newAuthFixture(t, false)
	f.tokens.EXPECT().ValidateToken("super").Return(&service.Claims{
		Roles:            []string{"supermarket", "unknown"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "s1"},
	}, nil).Twice()

	rec, seen := f.serve(t, "Bearer super", f.auth.RequireRole(entity.RoleAdmin, entity.RoleSupermarket))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"supermarket"}, seen.Roles)

	rec, _ = f.serve(t, "Bearer super", f.auth.RequireRole(entity.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
