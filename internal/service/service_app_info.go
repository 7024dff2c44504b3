package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService reports the configured version through the version
// endpoint. A blank version is a configuration error.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service created")

	return &appInfoService{appVersion: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.appVersion
}
