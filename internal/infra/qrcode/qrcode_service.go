package qrcode

import (
	"fmt"
	"strings"

	"breadmap/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateShareQR generates a PNG QR code pointing at the challenge share URL
func (s *qrcodeService) GenerateShareQR(shareToken string) ([]byte, error) {
	return s.generatePNG(s.ShareURL(shareToken))
}

// ShareURL builds the public challenge share URL for a share token
func (s *qrcodeService) ShareURL(shareToken string) string {
	return fmt.Sprintf("%s/challenges/shared/%s", s.baseURL, shareToken)
}

// GenerateFavoriteShareQR generates a PNG QR code pointing at the favorites share URL
func (s *qrcodeService) GenerateFavoriteShareQR(shareToken string) ([]byte, error) {
	return s.generatePNG(s.FavoriteShareURL(shareToken))
}

// FavoriteShareURL builds the public favorites share URL for a share token
func (s *qrcodeService) FavoriteShareURL(shareToken string) string {
	return fmt.Sprintf("%s/favorites/shared/%s", s.baseURL, shareToken)
}

func (s *qrcodeService) generatePNG(url string) ([]byte, error) {
	qrCode, err := qrcode.New(url, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
