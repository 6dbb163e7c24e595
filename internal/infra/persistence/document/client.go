// Package document implements the repositories on Cloud Firestore. Each offer is a single
// document with its line items embedded, and listings are delivered live through snapshot listeners.
package document

import (
	"context"
	"log/slog"

	"market/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ClientParams defines the required parameters
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App `optional:"true"`
	Logger *slog.Logger
}

// NewClient opens the Firestore client of the Firebase app and closes it on shutdown.
func NewClient(params ClientParams) (*firestore.Client, error) {
	if params.App == nil {
		return nil, errors.New("firebase must be configured for the firestore store driver")
	}

	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
