package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/localrail/railbook/internal/logger"
	"github.com/localrail/railbook/models"
)

// userRepository implements UserRepository on top of a JSON Collection.
type userRepository struct {
	collection *Collection[models.User]
	mu         sync.Mutex
	logger     *logger.Logger
}

// NewUserRepository constructs a UserRepository backed by the users
// collection file at path.
func NewUserRepository(path string, logger *logger.Logger) UserRepository {
	return &userRepository{
		collection: NewCollection(path, DefaultUsers, false, logger),
		logger:     logger,
	}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.collection.Load()
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

func (r *userRepository) FindByName(ctx context.Context, name string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.collection.Load()
	if err != nil {
		return models.User{}, fmt.Errorf("load users: %w", err)
	}

	for _, u := range users {
		if u.Name == name {
			return u, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (r *userRepository) FindByID(ctx context.Context, userID string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.collection.Load()
	if err != nil {
		return models.User{}, fmt.Errorf("load users: %w", err)
	}

	for _, u := range users {
		if u.UserID == userID {
			return u, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.collection.Load()
	if err != nil {
		return models.User{}, fmt.Errorf("load users: %w", err)
	}

	for _, u := range users {
		if strings.EqualFold(u.Name, user.Name) {
			return models.User{}, ErrUserAlreadyExists
		}
	}

	// plaintext never reaches disk: the json tag excludes it, this keeps it
	// out of the in-memory list too
	user.Password = ""
	if user.TicketsBooked == nil {
		user.TicketsBooked = []models.Ticket{}
	}

	users = append(users, user)
	if err := r.collection.Save(users); err != nil {
		return models.User{}, fmt.Errorf("save users: %w", err)
	}

	r.logger.Info().Str("user_id", user.UserID).Str("name", user.Name).Msg("user registered")
	return user, nil
}

func (r *userRepository) UpdateTickets(ctx context.Context, userID string, tickets []models.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.collection.Load()
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	for i, u := range users {
		if u.UserID != userID {
			continue
		}

		if tickets == nil {
			tickets = []models.Ticket{}
		}
		users[i].TicketsBooked = tickets

		if err := r.collection.Save(users); err != nil {
			return fmt.Errorf("save users: %w", err)
		}

		r.logger.Debug().Str("user_id", userID).Int("tickets", len(tickets)).Msg("ticket list updated")
		return nil
	}

	return ErrUserNotFound
}
