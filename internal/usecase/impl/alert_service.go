package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/constants"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"

	"go.uber.org/fx"
)

const (
	// certificateAlertWindow is how many days before expiry a certificate starts raising alerts.
	certificateAlertWindow = 30

	expiryDisplayLayout = "January 2, 2006"
	isoDateLayout       = "2006-01-02"
	hoursPerDay         = 24
)

// AlertServiceParams holds dependencies for the alert service, injected by Fx
type AlertServiceParams struct {
	fx.In

	Alerts   repository.AlertRepository
	Users    repository.UserRepository
	Notifier service.Notifier
	Tracker  service.ActivityTracker
	Logger   *slog.Logger
}

// alertService implements the AlertUsecase interface.
type alertService struct {
	alerts   repository.AlertRepository
	users    repository.UserRepository
	notifier service.Notifier
	tracker  service.ActivityTracker
	logger   *slog.Logger
	now      func() time.Time
}

// NewAlertService is the constructor for alertService.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		alerts:   params.Alerts,
		users:    params.Users,
		notifier: params.Notifier,
		tracker:  params.Tracker,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// CheckCertificateExpiration raises alerts for the user's expiring or expired certificates.
// A certificate that cannot be checked is logged and skipped; only an aborted check returns an error.
func (srv *alertService) CheckCertificateExpiration(ctx context.Context, user *entity.User) (_ int, err error) {
	defer trackCall(srv.tracker, constants.StoreAlerts, "check_certificates")(&err)

	if user == nil || user.ID == "" {
		srv.log(ctx).Warn("Skipping certificate check for user without id")

		return 0, nil
	}

	if !user.IsProducer() || len(user.Certifications) == 0 {
		return 0, nil
	}

	today := startOfDay(srv.now())
	created := 0

	for _, certType := range entity.CertificationTypes {
		if err := ctx.Err(); err != nil {
			return created, errors.Wrap(err, "certificate check aborted")
		}

		cert := user.Certifications[certType]
		if cert == nil {
			continue
		}

		expiry, ok := parseExpiryDate(cert.ValidUntil)
		if !ok {
			continue
		}

		days := daysBetween(today, expiry)
		if days > certificateAlertWindow {
			continue
		}

		raised, err := srv.raiseCertificateAlert(ctx, user, certType, cert, expiry, days)
		if err != nil {
			srv.log(ctx).Warn("Failed to check certificate",
				slog.String("user_id", user.ID),
				slog.String("certification_type", string(certType)),
				slog.Any("error", err),
			)

			continue
		}

		if raised {
			created++
		}
	}

	return created, nil
}

// raiseCertificateAlert creates an alert unless an open one already exists for the certificate.
func (srv *alertService) raiseCertificateAlert(
	ctx context.Context,
	user *entity.User,
	certType entity.CertificationType,
	cert *entity.Certification,
	expiry time.Time,
	days int,
) (bool, error) {
	open, err := srv.alerts.Find(ctx, entity.AlertFilter{
		UserID:            user.ID,
		CertificationType: certType,
		Statuses:          entity.OpenAlertStatuses,
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to find open alerts")
	}

	if len(open) > 0 {
		return false, nil
	}

	alert := certificateAlert(user, certType, cert, expiry, days)
	alert.Timestamp = srv.now().UTC()

	if err := srv.alerts.Create(ctx, alert); err != nil {
		return false, errors.Wrap(err, "failed to create alert")
	}

	srv.log(ctx).Info("Certificate alert created",
		slog.String("alert_id", alert.ID),
		slog.String("user_id", user.ID),
		slog.String("certification_type", string(certType)),
		slog.Int("days_until_expiry", days),
	)

	return true, nil
}

// certificateAlert builds the warning for a certificate that expires in days (negative once expired).
func certificateAlert(user *entity.User, certType entity.CertificationType, cert *entity.Certification, expiry time.Time, days int) *entity.Alert {
	scheme := strings.ToUpper(string(certType))

	title := scheme + " Certificate Expiring Soon"
	relative := fmt.Sprintf("will expire in %d days", days)
	if days < 0 {
		title = scheme + " Certificate Expired"
		relative = fmt.Sprintf("expired %d days ago", -days)
	}

	number := ""
	if cert.Number != "" {
		number = " (" + cert.Number + ")"
	}

	return &entity.Alert{
		Type:  entity.AlertTypeWarning,
		Title: title,
		Message: fmt.Sprintf("%s's %s certificate%s %s on %s",
			user.DisplayName(), scheme, number, relative, expiry.Format(expiryDisplayLayout)),
		UserID:            user.ID,
		CertificationType: certType,
		ExpiryDate:        cert.ValidUntil,
		Status:            entity.AlertStatusNew,
	}
}

// CheckAllCertificates checks every producer in users, one after another.
func (srv *alertService) CheckAllCertificates(ctx context.Context, users []*entity.User) (_ *usecase.CheckSummary, err error) {
	defer trackCall(srv.tracker, constants.StoreAlerts, "check_all_certificates")(&err)

	producers := make([]*entity.User, 0, len(users))
	for _, u := range users {
		if u.IsProducer() {
			producers = append(producers, u)
		}
	}

	summary := &usecase.CheckSummary{Producers: len(producers)}
	if len(producers) == 0 {
		srv.notifier.Notify(ctx, "No producers found to check certificates", service.SeverityInfo, service.DurationShort)

		return summary, nil
	}

	var failures []error
	for _, producer := range producers {
		created, err := srv.CheckCertificateExpiration(ctx, producer)
		summary.Created += created

		if err != nil {
			summary.Failures = append(summary.Failures, fmt.Sprintf("%s: %v", producer.DisplayName(), err))
			failures = append(failures, errors.Wrapf(err, "producer %s", producer.ID))
		}
	}

	srv.log(ctx).Info("Certificate check finished",
		slog.Int("producers", summary.Producers),
		slog.Int("created", summary.Created),
		slog.Int("failures", len(summary.Failures)),
	)

	switch {
	case len(failures) > 0:
		srv.notifier.Notify(ctx,
			"Errors occurred while checking certificates:\n"+strings.Join(summary.Failures, "\n"),
			service.SeverityError, service.DurationLong)

		return summary, errors.Join(failures...)
	case summary.Created > 0:
		plural := "s"
		if summary.Created == 1 {
			plural = ""
		}

		srv.notifier.Notify(ctx,
			fmt.Sprintf("Created %d new alert%s for expiring certificates", summary.Created, plural),
			service.SeveritySuccess, service.DurationShort)
	default:
		srv.notifier.Notify(ctx, "No new expiring certificates found", service.SeverityInfo, service.DurationShort)
	}

	return summary, nil
}

// SweepCertificates checks the certificates of every stored producer.
func (srv *alertService) SweepCertificates(ctx context.Context) (*usecase.CheckSummary, error) {
	producers, err := srv.users.FindByRole(ctx, entity.RoleProducer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list producers")
	}

	return srv.CheckAllCertificates(ctx, producers)
}

// AddAlert stores an alert with a fresh timestamp and status new.
func (srv *alertService) AddAlert(ctx context.Context, alert *entity.Alert) (_ *entity.Alert, err error) {
	defer trackCall(srv.tracker, constants.StoreAlerts, "add")(&err)

	verr := domainerrors.NewValidationError()
	if alert == nil {
		verr.Add("alert", "is required")

		return nil, verr
	}

	stored := *alert
	stored.ID = ""
	stored.Status = entity.AlertStatusNew
	stored.Timestamp = srv.now().UTC()
	stored.LastModified = nil

	if stored.Type == "" {
		stored.Type = entity.AlertTypeInfo
	}

	if stored.UserID == "" {
		verr.Add("userId", "is required")
	}

	if stored.Title == "" {
		verr.Add("title", "is required")
	}

	if !stored.Type.IsValid() {
		verr.Add("type", "must be one of info, warning, error")
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if err := srv.alerts.Create(ctx, &stored); err != nil {
		srv.log(ctx).Error("Failed to add alert", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add alert")
	}

	return &stored, nil
}

// UpdateAlertStatus moves an alert to status and stamps lastModified.
func (srv *alertService) UpdateAlertStatus(ctx context.Context, alertID string, status entity.AlertStatus) (err error) {
	defer trackCall(srv.tracker, constants.StoreAlerts, "update_status")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err,
			fmt.Sprintf("Alert %s successfully", strings.ToLower(string(status))),
			"Failed to update alert status")
	}()

	if !status.IsValid() {
		return domainerrors.ErrInvalidAlertStatus.WithDetails(string(status))
	}

	if err := srv.alerts.UpdateStatus(ctx, alertID, status, srv.now().UTC()); err != nil {
		return errors.Wrap(err, "failed to update alert status")
	}

	return nil
}

// DeleteAlert removes an alert.
func (srv *alertService) DeleteAlert(ctx context.Context, alertID string) (err error) {
	defer trackCall(srv.tracker, constants.StoreAlerts, "delete")(&err)
	defer func() {
		notifyOutcome(ctx, srv.notifier, err, "Alert deleted successfully", "Failed to delete alert")
	}()

	if _, err := srv.alerts.FindByID(ctx, alertID); err != nil {
		return errors.Wrap(err, "failed to find alert")
	}

	if err := srv.alerts.Delete(ctx, alertID); err != nil {
		return errors.Wrap(err, "failed to delete alert")
	}

	return nil
}

// ListAlerts lists alerts matching filter, newest first.
func (srv *alertService) ListAlerts(ctx context.Context, filter entity.AlertFilter) (_ []*entity.Alert, err error) {
	defer trackCall(srv.tracker, constants.StoreAlerts, "list")(&err)

	for _, s := range filter.Statuses {
		if !s.IsValid() {
			return nil, domainerrors.ErrInvalidAlertStatus.WithDetails(string(s))
		}
	}

	alerts, err := srv.alerts.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load alerts")
	}

	return alerts, nil
}

// --- Date helpers ---

// parseExpiryDate accepts an ISO date or an RFC 3339 timestamp and returns its calendar day in UTC.
func parseExpiryDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range []string{isoDateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return startOfDay(t), true
		}
	}

	return time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from from to to; negative when to is earlier.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / hoursPerDay)
}
