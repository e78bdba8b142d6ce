package service

import (
	"context"

	"github.com/MKhiriev/go-event-keeper/models"
)

// SignInMessage is the confirmation returned by a successful plain signin.
const SignInMessage = "Authentication Successful !"

// AuthService implements the plain authentication scheme: accounts are
// checked by direct secret comparison and no session artifact is issued.
type AuthService interface {
	SignUp(ctx context.Context, creds models.Credentials) error
	SignIn(ctx context.Context, creds models.Credentials) (string, error)
}

// TokenAuthService implements the token authentication scheme.
type TokenAuthService interface {
	SignUp(ctx context.Context, creds models.Credentials) error

	// SignIn checks creds and issues a signed access token.
	SignIn(ctx context.Context, creds models.Credentials) (models.AccessToken, error)

	// ParseToken verifies signature, issuer and expiry of tokenString.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves tokenString to the account it was issued for.
	Authenticate(ctx context.Context, tokenString string) (models.Caller, error)
}

// EventService manages unscoped event records.
type EventService interface {
	Create(ctx context.Context, request models.CreateRecordRequest) (models.Record, error)
	Get(ctx context.Context, id string) (models.Record, error)
	Update(ctx context.Context, id string, request models.UpdateRecordRequest) (models.Record, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) ([]models.Record, error)
}

// OwnedEventService manages event records on behalf of a verified caller.
// Records of other callers are reported as missing.
type OwnedEventService interface {
	Create(ctx context.Context, caller models.Caller, request models.CreateRecordRequest) (models.Record, error)
	Get(ctx context.Context, caller models.Caller, id string) (models.Record, error)
	Update(ctx context.Context, caller models.Caller, id string, request models.UpdateRecordRequest) (models.Record, error)
	Delete(ctx context.Context, caller models.Caller, id string) error
	Search(ctx context.Context, caller models.Caller, term string) ([]models.Record, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}
