package service

import (
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
)

type Services struct {
	AccountService AccountService
	TokenService   TokenService
}

func NewServices(storages *store.Storages, mailer Mailer, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AccountService: NewAccountService(storages.AccountRepository, mailer, cfg, logger),
		TokenService:   NewTokenService(cfg, logger),
	}
}
