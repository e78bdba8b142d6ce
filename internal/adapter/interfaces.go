// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the event keeper REST API.
//
// The primary abstraction is [ServerAdapter]. Non-2xx answers are returned as
// [*APIError], which unwraps to the sentinel of its status code so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-event-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the event keeper server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to owned record requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// SignUp registers an account. With the plain scheme the account can
	// only sign in through PlainSignIn; with the token scheme it can obtain
	// tokens through SignIn.
	SignUp(ctx context.Context, scheme Scheme, creds models.Credentials) error

	// PlainSignIn checks creds against a plain account and returns the
	// server confirmation message.
	PlainSignIn(ctx context.Context, creds models.Credentials) (string, error)

	// SignIn obtains an access token for a token account and stores it via
	// SetToken.
	SignIn(ctx context.Context, creds models.Credentials) (models.AccessToken, error)

	// Events returns the record API. With owned set, requests go to the
	// owner-scoped collection and carry the stored token.
	Events(owned bool) EventsAPI

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppInfo, error)
}

// EventsAPI is one record collection of the server.
type EventsAPI interface {
	Create(ctx context.Context, request models.CreateRecordRequest) (models.Record, error)
	Get(ctx context.Context, id string) (models.Record, error)
	Update(ctx context.Context, id string, request models.UpdateRecordRequest) (models.Record, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) ([]models.Record, error)
}
