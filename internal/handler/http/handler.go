package http

import (
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
)

type Handler struct {
	services *service.Services

	// app controls the session cookie attributes (Secure/SameSite via the
	// environment flag, MaxAge via the token duration).
	app config.App

	// server carries the frontend origin for CORS and the per-request
	// timeout.
	server config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, app config.App, server config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		app:      app,
		server:   server,
		logger:   logger,
	}
}
