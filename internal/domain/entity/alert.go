package entity

import "time"

// AlertType is the severity of an alert.
type AlertType string

const (
	AlertTypeInfo    AlertType = "info"
	AlertTypeWarning AlertType = "warning"
	AlertTypeError   AlertType = "error"
)

// IsValid checks if the alert type is known.
func (t AlertType) IsValid() bool {
	return t == AlertTypeInfo || t == AlertTypeWarning || t == AlertTypeError
}

// AlertStatus tracks how far an alert has been handled.
type AlertStatus string

const (
	AlertStatusNew          AlertStatus = "new"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
)

// OpenAlertStatuses are the statuses that block a duplicate certificate alert.
var OpenAlertStatuses = []AlertStatus{AlertStatusNew, AlertStatusAcknowledged}

// IsValid checks if the alert status is known.
func (s AlertStatus) IsValid() bool {
	return s == AlertStatusNew || s == AlertStatusAcknowledged || s == AlertStatusResolved
}

// Alert is a user-facing notice, mostly produced by certificate expiry checks.
type Alert struct {
	ID                string            `json:"id"`
	Type              AlertType         `json:"type"`
	Title             string            `json:"title"`
	Message           string            `json:"message"`
	UserID            string            `json:"userId"`
	CertificationType CertificationType `json:"certificationType,omitempty"`
	ExpiryDate        string            `json:"expiryDate,omitempty"`
	Status            AlertStatus       `json:"status"`
	Timestamp         time.Time         `json:"timestamp"`
	LastModified      *time.Time        `json:"lastModified,omitempty"`
}

// AlertFilter narrows an alert listing. Statuses match any of the given values.
type AlertFilter struct {
	UserID            string
	CertificationType CertificationType
	Statuses          []AlertStatus
}
