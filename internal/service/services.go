package service

import (
	"github.com/localrail/railbook/internal/config"
	"github.com/localrail/railbook/internal/logger"
	"github.com/localrail/railbook/internal/store"
)

// Services groups the service layer into a single value handed to the
// console shell.
type Services struct {
	Catalog   TrainCatalog
	Directory UserDirectory
	Booking   BookingCoordinator
}

// NewServices wires the service layer on top of the storage layer.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	catalog := NewTrainCatalog(storages.TrainRepository, logger)
	directory := NewUserDirectory(storages.UserRepository, cfg.BcryptCost, logger)

	return &Services{
		Catalog:   catalog,
		Directory: directory,
		Booking:   NewBookingCoordinator(catalog, directory, logger),
	}
}
