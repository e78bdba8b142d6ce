package http

import (
	"time"

	"github.com/MKhiriev/go-event-keeper/internal/config"
	"github.com/MKhiriev/go-event-keeper/internal/logger"
	"github.com/MKhiriev/go-event-keeper/internal/service"
	"github.com/MKhiriev/go-event-keeper/internal/validators"
)

type Handler struct {
	services *service.Services

	plainCredentialsValidator validators.Validator
	tokenCredentialsValidator validators.Validator
	recordValidator           validators.Validator

	metrics        *Metrics
	rateLimit      config.RateLimit
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:                  services,
		plainCredentialsValidator: validators.NewPlainCredentialsValidator(),
		tokenCredentialsValidator: validators.NewTokenCredentialsValidator(),
		recordValidator:           validators.NewRecordValidator(),
		metrics:                   NewMetrics(),
		rateLimit:                 cfg.RateLimit,
		requestTimeout:            cfg.Server.RequestTimeout,
		logger:                    logger,
	}
}
