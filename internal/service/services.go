package service

import (
	"github.com/MKhiriev/go-event-keeper/internal/config"
	"github.com/MKhiriev/go-event-keeper/internal/logger"
	"github.com/MKhiriev/go-event-keeper/internal/store"
	"github.com/MKhiriev/go-event-keeper/models"
)

type Services struct {
	AuthService       AuthService
	TokenAuthService  TokenAuthService
	EventService      EventService
	OwnedEventService OwnedEventService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.AuthUsers, logger),
		TokenAuthService:  NewTokenAuthService(storages.TokenUsers, cfg.App, logger),
		EventService:      NewEventService(storages.Events, logger),
		OwnedEventService: NewOwnedEventService(storages.OwnedEvents, logger),
		AppInfoService:    NewAppInfoService(buildInfo, cfg.App.Stage, logger),
	}
}
