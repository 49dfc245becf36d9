package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/localrail/railbook/internal/logger"
	"github.com/localrail/railbook/internal/store"
	"github.com/localrail/railbook/models"
)

// trainCatalog is the concrete implementation of TrainCatalog. It is a thin
// layer over the train repository: the repository already reads disk on every
// call, so the freshness contract holds without any cache invalidation here.
type trainCatalog struct {
	trainRepository store.TrainRepository
	logger          *logger.Logger
}

// NewTrainCatalog constructs a TrainCatalog wired to the given repository.
func NewTrainCatalog(trainRepository store.TrainRepository, logger *logger.Logger) TrainCatalog {
	return &trainCatalog{
		trainRepository: trainRepository,
		logger:          logger,
	}
}

// Search filters the catalog by route. A train qualifies only when both
// stations appear in its route and the source strictly precedes the
// destination; presence alone is not enough.
func (c *trainCatalog) Search(ctx context.Context, source, destination string) ([]models.Train, error) {
	src := strings.ToLower(strings.TrimSpace(source))
	dest := strings.ToLower(strings.TrimSpace(destination))

	trains, err := c.trainRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trains: %w", err)
	}

	result := make([]models.Train, 0, len(trains))
	for _, train := range trains {
		if servesRoute(train, src, dest) {
			result = append(result, train)
		}
	}

	c.logger.Debug().
		Str("source", src).
		Str("destination", dest).
		Int("matches", len(result)).
		Msg("train search")

	return result, nil
}

func (c *trainCatalog) GetTrain(ctx context.Context, trainID string) (models.Train, error) {
	return c.trainRepository.GetByID(ctx, trainID)
}

func (c *trainCatalog) Seats(ctx context.Context, trainID string) ([][]int, error) {
	train, err := c.trainRepository.GetByID(ctx, trainID)
	if err != nil {
		return nil, err
	}
	return train.Seats, nil
}

func (c *trainCatalog) SetSeat(ctx context.Context, trainID string, row, col, value int) error {
	return c.trainRepository.SetSeat(ctx, trainID, row, col, value)
}

func (c *trainCatalog) Upsert(ctx context.Context, train models.Train) error {
	return c.trainRepository.Upsert(ctx, train)
}

// servesRoute reports whether the train stops at src before dest.
// Both arguments must already be trimmed and lowercased.
func servesRoute(train models.Train, src, dest string) bool {
	srcIdx, destIdx := -1, -1
	for i, station := range train.Stations {
		switch strings.ToLower(station) {
		case src:
			if srcIdx == -1 {
				srcIdx = i
			}
		case dest:
			if destIdx == -1 {
				destIdx = i
			}
		}
	}

	return srcIdx != -1 && destIdx != -1 && srcIdx < destIdx
}
