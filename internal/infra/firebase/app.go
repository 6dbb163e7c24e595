// Package firebase builds the shared Firebase app used by Firestore, Auth and Cloud Messaging.
package firebase

import (
	"context"
	"log/slog"

	"market/config"
	"market/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Configured reports whether cfg carries enough Firebase settings to build an app.
func Configured(cfg *config.Config) bool {
	return cfg.Firebase != nil && cfg.Firebase.ProjectID != ""
}

// New creates the Firebase app. It returns a nil app when Firebase is not configured;
// consumers that need it must check.
func New(params Params) (*firebase.App, error) {
	if !Configured(params.Config) {
		params.Logger.Info("Firebase not configured")

		return nil, nil
	}

	cfg := params.Config.Firebase

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("project_id", cfg.ProjectID))

	return app, nil
}
