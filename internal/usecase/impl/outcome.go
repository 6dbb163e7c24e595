package impl

import (
	"context"
	"net/http"

	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	"market/internal/errors"
)

// trackCall starts an activity and returns the function that ends it with the final value of
// *errp. Use it with a named error result: defer trackCall(tracker, store, op)(&err).
func trackCall(tracker service.ActivityTracker, store, operation string) func(errp *error) {
	end := tracker.Begin(store, operation)

	return func(errp *error) {
		end(*errp)
	}
}

// notifyOutcome reports a mutation result to the user. An empty success message stays silent.
func notifyOutcome(ctx context.Context, notifier service.Notifier, err error, success, failure string) {
	if err != nil {
		notifier.Notify(ctx, failureMessage(err, failure), service.SeverityError, service.DurationLong)

		return
	}

	if success != "" {
		notifier.Notify(ctx, success, service.SeveritySuccess, service.DurationShort)
	}
}

// failureMessage prefers the user-facing message of a client error over the fallback.
// Server-side failures never leak their detail.
func failureMessage(err error, fallback string) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return appErr.Message()
	}

	return fallback
}
