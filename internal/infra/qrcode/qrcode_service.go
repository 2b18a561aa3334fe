package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"verdeluxe/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service that links to the storefront at baseURL.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
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

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func (s *qrcodeService) PlantARURL(slug string) string {
	return fmt.Sprintf("%s/plants/%s/ar", s.baseURL, url.PathEscape(slug))
}

func (s *qrcodeService) GeneratePlantARQR(slug string) ([]byte, error) {
	if slug == "" {
		return nil, errors.New("plant slug is required")
	}

	qrCode, err := qrcode.New(s.PlantARURL(slug), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
