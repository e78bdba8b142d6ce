package service

import (
	"context"

	"github.com/MKhiriev/go-event-keeper/internal/logger"
	"github.com/MKhiriev/go-event-keeper/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService returns an AppInfoService reporting buildInfo and the
// deployment stage.
func NewAppInfoService(buildInfo models.AppBuildInfo, stage string, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		info: models.AppInfo{
			Version: buildInfo.BuildVersion(),
			Date:    buildInfo.BuildDate(),
			Commit:  buildInfo.BuildCommit(),
			Stage:   stage,
		},
		logger: logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
