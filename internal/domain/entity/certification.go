package entity

// CertificationType names a producer certificate scheme.
type CertificationType string

const (
	CertificationGlobalGap CertificationType = "globalGap"
	CertificationGrasp     CertificationType = "grasp"
	CertificationEco       CertificationType = "eco"
)

// CertificationTypes lists the schemes checked for expiry, in checking order.
var CertificationTypes = []CertificationType{
	CertificationGlobalGap,
	CertificationGrasp,
	CertificationEco,
}

// IsValid checks if the certification type is known.
func (t CertificationType) IsValid() bool {
	switch t {
	case CertificationGlobalGap, CertificationGrasp, CertificationEco:
		return true
	default:
		return false
	}
}

// Certification is a producer certificate. ValidUntil is kept as entered (an ISO date) because
// document records may hold malformed values that expiry checks must skip rather than reject.
type Certification struct {
	Number     string `json:"number" firestore:"number"`
	ValidUntil string `json:"validUntil" firestore:"validUntil"`
	Status     string `json:"status,omitempty" firestore:"status"`
}
