package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-item-reviews/internal/config"
	"github.com/MKhiriev/go-item-reviews/internal/logger"
)

// appInfoService reports static facts about the running server.
type appInfoService struct {
	version string
}

// NewAppInfoService returns an AppInfoService for cfg.Version. Surrounding
// whitespace is dropped and a blank version is rejected.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", version).Msg("app info service created")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	logger.FromContext(ctx).Debug().Str("version", s.version).Msg("app version requested")
	return s.version
}
