package store

import (
	"context"
	"fmt"

	"github.com/localrail/railbook/internal/config"
	"github.com/localrail/railbook/internal/logger"
)

// Storages groups the repositories backing the booking system into a single
// value that can be passed around the service layer.
type Storages struct {
	// TrainRepository is the JSON-file-backed repository for the train catalog.
	TrainRepository TrainRepository

	// UserRepository is the JSON-file-backed repository for registered users.
	UserRepository UserRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. Both collection files are loaded once up front so that a broken
// storage location is detected at startup, where it is fatal, rather than in
// the middle of a booking.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().
		Str("trains_file", cfg.TrainsFile).
		Str("users_file", cfg.UsersFile).
		Msg("creating storages")

	trains := NewTrainRepository(cfg.TrainsFile, logger)
	users := NewUserRepository(cfg.UsersFile, logger)

	ctx := context.Background()
	if _, err := trains.List(ctx); err != nil {
		return nil, fmt.Errorf("trains storage unusable: %w", err)
	}
	if _, err := users.List(ctx); err != nil {
		return nil, fmt.Errorf("users storage unusable: %w", err)
	}

	return &Storages{
		TrainRepository: trains,
		UserRepository:  users,
	}, nil
}
