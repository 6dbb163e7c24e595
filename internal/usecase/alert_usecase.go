package usecase

import (
	"context"

	"market/internal/domain/entity"
)

// CheckSummary reports the outcome of a certificate sweep over many users.
type CheckSummary struct {
	Producers int      `json:"producers"`
	Created   int      `json:"created"`
	Failures  []string `json:"failures,omitempty"`
}

// AlertUsecase defines certificate expiry checks and alert management.
type AlertUsecase interface {
	// CheckCertificateExpiration creates alerts for the user's certificates that expire within
	// 30 days or have expired, skipping certificates that already have an open alert.
	// It returns the number of alerts created. A certificate type that fails is logged and
	// skipped, and a user without an id is skipped; only a cancelled context returns an error.
	CheckCertificateExpiration(ctx context.Context, user *entity.User) (int, error)

	// CheckAllCertificates runs CheckCertificateExpiration for every producer in users.
	// A failing producer does not stop the rest; any failure makes the returned error non-nil.
	CheckAllCertificates(ctx context.Context, users []*entity.User) (*CheckSummary, error)

	// SweepCertificates runs CheckAllCertificates over every stored user.
	SweepCertificates(ctx context.Context) (*CheckSummary, error)

	AddAlert(ctx context.Context, alert *entity.Alert) (*entity.Alert, error)
	UpdateAlertStatus(ctx context.Context, alertID string, status entity.AlertStatus) error
	DeleteAlert(ctx context.Context, alertID string) error
	ListAlerts(ctx context.Context, filter entity.AlertFilter) ([]*entity.Alert, error)
}
