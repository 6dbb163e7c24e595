package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOfferQR generates a PNG QR label pointing at an offer
	GenerateOfferQR(offerID string) ([]byte, error)

	// ParseOfferQR parses QR code data and returns the offer ID
	ParseOfferQR(qrData string) (string, error)
}
