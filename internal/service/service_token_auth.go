// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-event-keeper/internal/config"
	"github.com/MKhiriev/go-event-keeper/internal/logger"
	"github.com/MKhiriev/go-event-keeper/internal/store"
	"github.com/MKhiriev/go-event-keeper/internal/utils"
	"github.com/MKhiriev/go-event-keeper/models"
)

// tokenAuthService is the concrete implementation of TokenAuthService.
// It handles registration, credential verification and the access token
// lifecycle using a UserRepository for persistence and HS256 JWTs.
type tokenAuthService struct {
	// userRepository is the identity store of the token scheme.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// now is the clock used to issue and verify tokens.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenAuthService constructs a TokenAuthService wired to the given
// UserRepository and populated with the token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewTokenAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) TokenAuthService {
	return &tokenAuthService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *tokenAuthService) SignUp(ctx context.Context, creds models.Credentials) error {
	return signUp(ctx, s.userRepository, creds)
}

// SignIn checks creds and issues a token carrying the account name and tier.
//
// Returns ErrInvalidCredentials for an unknown name or a wrong secret, and
// ErrTokenCreationFailed if signing fails.
func (s *tokenAuthService) SignIn(ctx context.Context, creds models.Credentials) (models.AccessToken, error) {
	log := logger.FromContext(ctx)

	user, err := signIn(ctx, s.userRepository, creds)
	if err != nil {
		return models.AccessToken{}, err
	}

	token, err := utils.GenerateJWTToken(user, s.tokenIssuer, s.tokenDuration, s.tokenSignKey, s.now())
	if err != nil {
		log.Err(err).Str("func", "*tokenAuthService.SignIn").Str("username", user.Name).Msg("creation of token failed")
		return models.AccessToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AccessToken{AccessToken: token.String()}, nil
}

// ParseToken validates and parses a raw token string.
//
// Any validation failure (expired, wrong issuer or algorithm, bad signature,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (s *tokenAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer, s.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenAuthService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate parses tokenString and loads the account named in it.
// A valid token for an account that no longer exists yields ErrUnauthorized.
func (s *tokenAuthService) Authenticate(ctx context.Context, tokenString string) (models.Caller, error) {
	log := logger.FromContext(ctx)

	token, err := s.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Caller{}, err
	}

	user, err := s.userRepository.FindUserByName(ctx, token.Claims.Name)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		log.Debug().Str("func", "*tokenAuthService.Authenticate").Str("username", token.Claims.Name).Msg("token owner does not exist")
		return models.Caller{}, ErrUnauthorized
	case err != nil:
		log.Err(err).Str("func", "*tokenAuthService.Authenticate").Msg("user search by name failed")
		return models.Caller{}, fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}

	return models.NewCaller(user), nil
}
