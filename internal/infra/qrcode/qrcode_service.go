// Package qrcode renders shareable station QR codes.
package qrcode

import (
	"net/url"
	"path"
	"strings"

	"gasradar/config"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	// stationURIPrefix is encoded when no public base URL is configured.
	stationURIPrefix = "gasradar:station:"
	stationPath      = "/stations/"
)

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type qrcodeService struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL string
}

// New builds the QR code service from the qrcode config section.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService falls back to 256px and level M for unset or unknown values.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(errorCorrectionLevel)]
	if !ok {
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:    size,
		level:   level,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateStationQR encodes the station's public page when a base URL is set
// so phone cameras open it directly, and a gasradar: URI otherwise.
func (s *qrcodeService) GenerateStationQR(idEESS string) ([]byte, error) {
	if idEESS == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("station id is required")
	}

	content := stationURIPrefix + idEESS
	if s.baseURL != "" {
		content = s.baseURL + stationPath + url.PathEscape(idEESS)
	}

	png, err := qrcode.Encode(content, s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render station QR code")
	}

	return png, nil
}

// ParseStationQR accepts both encodings produced by GenerateStationQR.
func (s *qrcodeService) ParseStationQR(content string) (string, error) {
	content = strings.TrimSpace(content)

	if id, ok := strings.CutPrefix(content, stationURIPrefix); ok {
		return validStationID(id)
	}

	u, err := url.Parse(content)
	if err != nil || u.Host == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("not a station QR code")
	}
	dir, id := path.Split(u.Path)
	if !strings.HasSuffix(dir, stationPath) {
		return "", domainerrors.ErrValidationFailed.WrapMessage("not a station QR code")
	}

	return validStationID(id)
}

func validStationID(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, "/ ") {
		return "", domainerrors.ErrValidationFailed.WrapMessage("QR code has no station id")
	}

	return id, nil
}
