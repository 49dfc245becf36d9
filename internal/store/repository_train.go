package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/localrail/railbook/internal/logger"
	"github.com/localrail/railbook/models"
)

// trainRepository implements TrainRepository on top of a JSON Collection.
//
// A mutex serializes load-modify-save sequences so the TUI's asynchronous
// commands cannot interleave two writes to the trains file. That guards file
// integrity only; cross-entity booking consistency is the coordinator's job.
type trainRepository struct {
	collection *Collection[models.Train]
	mu         sync.Mutex
	logger     *logger.Logger
}

// NewTrainRepository constructs a TrainRepository backed by the trains
// collection file at path.
func NewTrainRepository(path string, logger *logger.Logger) TrainRepository {
	return &trainRepository{
		collection: NewCollection(path, DefaultTrains, true, logger),
		logger:     logger,
	}
}

func (r *trainRepository) List(ctx context.Context) ([]models.Train, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trains, err := r.collection.Load()
	if err != nil {
		return nil, fmt.Errorf("load trains: %w", err)
	}

	out := make([]models.Train, len(trains))
	for i, t := range trains {
		out[i] = t.Clone()
	}
	return out, nil
}

func (r *trainRepository) GetByID(ctx context.Context, trainID string) (models.Train, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trains, err := r.collection.Load()
	if err != nil {
		return models.Train{}, fmt.Errorf("load trains: %w", err)
	}

	for _, t := range trains {
		if t.TrainID == trainID {
			return t.Clone(), nil
		}
	}

	return models.Train{}, ErrTrainNotFound
}

func (r *trainRepository) Upsert(ctx context.Context, train models.Train) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trains, err := r.collection.Load()
	if err != nil {
		return fmt.Errorf("load trains: %w", err)
	}

	replaced := false
	for i, t := range trains {
		if t.TrainID == train.TrainID {
			trains[i] = train.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		trains = append(trains, train.Clone())
	}

	if err := r.collection.Save(trains); err != nil {
		return fmt.Errorf("save trains: %w", err)
	}

	r.logger.Debug().Str("train_id", train.TrainID).Bool("replaced", replaced).Msg("train upserted")
	return nil
}

func (r *trainRepository) SetSeat(ctx context.Context, trainID string, row, col, value int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trains, err := r.collection.Load()
	if err != nil {
		return fmt.Errorf("load trains: %w", err)
	}

	for i, t := range trains {
		if t.TrainID != trainID {
			continue
		}

		if !t.SeatInBounds(row, col) {
			return ErrSeatOutOfRange
		}

		trains[i].Seats[row][col] = value
		if err := r.collection.Save(trains); err != nil {
			return fmt.Errorf("save trains: %w", err)
		}

		r.logger.Debug().
			Str("train_id", trainID).
			Int("row", row).
			Int("col", col).
			Int("value", value).
			Msg("seat updated")
		return nil
	}

	return ErrTrainNotFound
}
