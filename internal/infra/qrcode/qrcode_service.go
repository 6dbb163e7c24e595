package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"market/config"
	"market/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	offerType   = "offer"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	OfferID string `json:"offer_id"`
	Type    string `json:"type"`
	URL     string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, "M", ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		baseURL:              baseURL,
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateOfferQR generates a QR label that identifies an offer
func (s *qrcodeService) GenerateOfferQR(offerID string) ([]byte, error) {
	if offerID == "" {
		return nil, fmt.Errorf("offer ID is required")
	}

	data := QRCodeData{
		OfferID: offerID,
		Type:    offerType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + offerID
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOfferQR parses QR code data and returns the offer ID
func (s *qrcodeService) ParseOfferQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != offerType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.OfferID == "" {
		return "", fmt.Errorf("QR code carries no offer ID")
	}

	return data.OfferID, nil
}
