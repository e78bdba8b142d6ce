package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-keeper/internal/logger"
	"github.com/MKhiriev/go-event-keeper/internal/store"
	"github.com/MKhiriev/go-event-keeper/models"
)

// plainAuthService is the concrete implementation of AuthService.
// Secrets are stored and compared as received.
type plainAuthService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &plainAuthService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// SignUp creates a PENDING account. Returns ErrDuplicateName when the name is
// taken and ErrOperationFailed for any other storage failure.
func (s *plainAuthService) SignUp(ctx context.Context, creds models.Credentials) error {
	return signUp(ctx, s.userRepository, creds)
}

// SignIn returns SignInMessage when creds match a stored account, and
// ErrInvalidCredentials otherwise.
func (s *plainAuthService) SignIn(ctx context.Context, creds models.Credentials) (string, error) {
	if _, err := signIn(ctx, s.userRepository, creds); err != nil {
		return "", err
	}

	return SignInMessage, nil
}

func signUp(ctx context.Context, users store.UserRepository, creds models.Credentials) error {
	log := logger.FromContext(ctx)

	_, err := users.CreateUser(ctx, models.User{
		Name:   creds.Name,
		Secret: creds.Secret,
		Tier:   models.TierPending,
	})
	switch {
	case errors.Is(err, store.ErrNameAlreadyExists):
		log.Debug().Str("func", "signUp").Str("username", creds.Name).Msg("username already exists")
		return fmt.Errorf("%w: %q", ErrDuplicateName, creds.Name)
	case err != nil:
		log.Err(err).Str("func", "signUp").Str("username", creds.Name).Msg("user creation ended with error")
		return fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}

	return nil
}

// signIn returns the stored account when creds match it. Unknown name and
// wrong secret are indistinguishable to the caller.
func signIn(ctx context.Context, users store.UserRepository, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := users.FindUserByName(ctx, creds.Name)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		log.Debug().Str("func", "signIn").Str("username", creds.Name).Msg("no user was found")
		return models.User{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Str("func", "signIn").Str("username", creds.Name).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}

	if user.Secret != creds.Secret {
		log.Debug().Str("func", "signIn").Str("username", creds.Name).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}
