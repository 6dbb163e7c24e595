package qrcode

import (
	"encoding/json"
	"testing"

	"market/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: tt.level}})
			impl, ok := svc.(*qrcodeService)
			require.True(t, ok)
			assert.Equal(t, tt.wantLevel, impl.errorCorrectionLevel)
			assert.Equal(t, 128, impl.size)
		})
	}
}

func TestQRCodeService_GenerateOfferQR(t *testing.T) {
	svc := NewQRCodeService(nil)

	qrBytes, err := svc.GenerateOfferQR("offer-1")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])

	_, err = svc.GenerateOfferQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ParseOfferQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{BaseURL: "https://market.example/offers/"}})

	payload, err := json.Marshal(QRCodeData{OfferID: "offer-9", Type: "offer", URL: "https://market.example/offers/offer-9"})
	require.NoError(t, err)

	offerID, err := svc.ParseOfferQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "offer-9", offerID)

	tests := []struct {
		name string
		data string
	}{
		{"not json", "offer-9"},
		{"wrong type", `{"offer_id":"offer-9","type":"subscription"}`},
		{"missing id", `{"type":"offer"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseOfferQR(tt.data)
			assert.Error(t, err)
		})
	}
}
