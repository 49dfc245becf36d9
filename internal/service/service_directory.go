package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/localrail/railbook/internal/logger"
	"github.com/localrail/railbook/internal/store"
	"github.com/localrail/railbook/internal/utils"
	"github.com/localrail/railbook/models"
)

// userDirectory is the concrete implementation of UserDirectory. It handles
// registration and credential verification using a UserRepository for
// persistence and bcrypt for password hashing.
type userDirectory struct {
	userRepository store.UserRepository
	uuidGenerator  *utils.UUIDGenerator
	bcryptCost     int
	logger         *logger.Logger
}

// NewUserDirectory constructs a UserDirectory wired to the given repository.
// bcryptCost controls password hashing strength.
func NewUserDirectory(userRepository store.UserRepository, bcryptCost int, logger *logger.Logger) UserDirectory {
	return &userDirectory{
		userRepository: userRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// SignUp registers a new account and returns it. The caller treats a
// successful signup as an implicit login.
//
// Returns:
//   - ErrInvalidInput if name or password is blank.
//   - store.ErrUserAlreadyExists (wrapped) if the name is taken.
func (d *userDirectory) SignUp(ctx context.Context, name, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return models.User{}, ErrInvalidInput
	}

	hashed, err := utils.HashPassword(password, d.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		UserID:         d.uuidGenerator.Generate(),
		Name:           name,
		HashedPassword: hashed,
		TicketsBooked:  []models.Ticket{},
	}

	created, err := d.userRepository.Create(ctx, user)
	if err != nil {
		d.logger.Err(err).Str("name", name).Msg("signup failed")
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	d.logger.Info().Str("user_id", created.UserID).Str("name", created.Name).Msg("signup successful")
	return created, nil
}

// VerifyCredentials authenticates by name and plaintext password.
//
// An unknown name and a wrong password both come back as ErrAuthFailed so the
// caller cannot probe which names are registered.
func (d *userDirectory) VerifyCredentials(ctx context.Context, name, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return models.User{}, ErrInvalidInput
	}

	user, err := d.userRepository.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			d.logger.Warn().Str("name", name).Msg("login attempt for unknown user")
			return models.User{}, ErrAuthFailed
		}
		return models.User{}, fmt.Errorf("find user by name: %w", err)
	}

	if !utils.VerifyPassword(user.HashedPassword, password) {
		d.logger.Warn().Str("name", name).Msg("wrong password")
		return models.User{}, ErrAuthFailed
	}

	d.logger.Info().Str("user_id", user.UserID).Str("name", user.Name).Msg("login successful")
	return user, nil
}

func (d *userDirectory) FindByName(ctx context.Context, name string) (models.User, error) {
	return d.userRepository.FindByName(ctx, strings.TrimSpace(name))
}

func (d *userDirectory) FindByID(ctx context.Context, userID string) (models.User, error) {
	return d.userRepository.FindByID(ctx, userID)
}

func (d *userDirectory) UpdateTickets(ctx context.Context, userID string, tickets []models.Ticket) error {
	return d.userRepository.UpdateTickets(ctx, userID, tickets)
}
