package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"
)

// qrModuleScale is the pixel width of a single QR module. go-qrcode
// interprets a negative size as a per-module scale and adds its
// standard 4-module quiet zone around the symbol.
const qrModuleScale = 10

type QRService interface {
	// Ensure returns the public path of the QR image for username,
	// generating and caching it on first use.
	Ensure(username string, profileURL string) (string, error)
}

type qrService struct {
	dir string
	log *logrus.Logger
}

func NewQRService(dir string, log *logrus.Logger) QRService {
	return &qrService{
		dir: dir,
		log: log,
	}
}

func (s *qrService) Ensure(username string, profileURL string) (string, error) {
	publicPath := "/static/qr/" + username + ".png"
	filePath := filepath.Join(s.dir, username+".png")

	// Artifacts are immutable once written; an existing file is reused
	// even if the configured base URL has since changed.
	if _, err := os.Stat(filePath); err == nil {
		return publicPath, nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create qr cache directory: %w", err)
	}

	if err := qrcode.WriteFile(profileURL, qrcode.Medium, -qrModuleScale, filePath); err != nil {
		return "", fmt.Errorf("failed to write qr image for %s: %w", username, err)
	}

	s.log.Infof("Generated QR code for %s at %s", username, filePath)
	return publicPath, nil
}
