package auth

import (
	"context"

	"market/internal/domain/service"
	"market/internal/errors"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
)

// firebaseVerifier checks Firebase ID tokens issued to web clients.
type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier creates an IdentityVerifier backed by the Firebase Auth client of app.
func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (service.IdentityVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// VerifyIDToken verifies the token signature and expiry and returns the identity it carries.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	identity := &service.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}

	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}

	return identity, nil
}
