package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-event-keeper/internal/logger"
	"github.com/MKhiriev/go-event-keeper/internal/mock"
	"github.com/MKhiriev/go-event-keeper/internal/store"
	"github.com/MKhiriev/go-event-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc builds plainAuthService over a mocked repository
func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	return NewAuthService(users, logger.Nop()), users
}

// ── SignUp ───────────────────────────────────────────────────────────────────

func TestAuthService_SignUp_Success(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Name)
			assert.Equal(t, "Secret1!", u.Secret)
			assert.Equal(t, models.TierPending, u.Tier)
			u.UserID = "id-1"
			return u, nil
		},
	)

	require.NoError(t, svc.SignUp(ctx, models.Credentials{Name: "alice", Secret: "Secret1!"}))
}

func TestAuthService_SignUp_DuplicateName(t *testing.T) {
	svc, users := newTestAuthSvc(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNameAlreadyExists)

	err := svc.SignUp(context.Background(), models.Credentials{Name: "alice", Secret: "x"})
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Contains(t, err.Error(), "alice")
}

func TestAuthService_SignUp_StorageFailure(t *testing.T) {
	svc, users := newTestAuthSvc(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, errors.New("connection refused"))

	err := svc.SignUp(context.Background(), models.Credentials{Name: "alice", Secret: "x"})
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Contains(t, err.Error(), "connection refused")
}

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestAuthService_SignIn(t *testing.T) {
	stored := models.User{UserID: "id-1", Name: "alice", Secret: "Secret1!", Tier: models.TierPending}

	tests := []struct {
		name    string
		creds   models.Credentials
		found   models.User
		findErr error
		wantErr error
	}{
		{name: "correct secret", creds: models.Credentials{Name: "alice", Secret: "Secret1!"}, found: stored},
		{name: "wrong secret", creds: models.Credentials{Name: "alice", Secret: "secret1!"}, found: stored, wantErr: ErrInvalidCredentials},
		{name: "unknown name", creds: models.Credentials{Name: "bob", Secret: "Secret1!"}, findErr: store.ErrUserNotFound, wantErr: ErrInvalidCredentials},
		{name: "storage failure", creds: models.Credentials{Name: "alice", Secret: "Secret1!"}, findErr: errors.New("timeout"), wantErr: ErrOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users := newTestAuthSvc(t)
			users.EXPECT().FindUserByName(gomock.Any(), tt.creds.Name).Return(tt.found, tt.findErr)

			msg, err := svc.SignIn(context.Background(), tt.creds)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, msg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, SignInMessage, msg)
		})
	}
}
