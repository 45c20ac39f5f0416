package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexadigitall/platform/internal/app/models"
	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/pkg/apperrors"
	"github.com/hexadigitall/platform/internal/pkg/auth"
)

func newTestAuthService(userRepo *fakeUserRepo, bootstrap BootstrapAdmin) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    24 * time.Hour,
		TokenIssuer: "test",
	})
	return NewAuthService(userRepo, jwtService, bootstrap, zerolog.Nop())
}

func storedUser(t *testing.T, username, password string, role models.Role, status models.UserStatus) *models.User {
	t.Helper()
	hash, salt, err := auth.HashPassword(password, "")
	require.NoError(t, err)
	return &models.User{
		ID:           7,
		Username:     username,
		Email:        username + "@example.com",
		Role:         role,
		Status:       status,
		PasswordHash: hash,
		PasswordSalt: salt,
	}
}

func TestAuthService_LoginSuccess(t *testing.T) {
	user := storedUser(t, "jdoe", "secret123", models.RoleTeacher, models.StatusActive)
	lastLoginUpdated := false
	repo := &fakeUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return user, nil
		},
		updateLastLoginFn: func(ctx context.Context, userID int64) error {
			lastLoginUpdated = true
			return nil
		},
	}
	svc := newTestAuthService(repo, BootstrapAdmin{})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "jdoe", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, "teacher", resp.Role)
	assert.Equal(t, int((24 * time.Hour).Seconds()), resp.ExpiresIn)
	assert.True(t, lastLoginUpdated)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	user := storedUser(t, "jdoe", "secret123", models.RoleStudent, models.StatusActive)
	repo := &fakeUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return user, nil
		},
	}
	svc := newTestAuthService(repo, BootstrapAdmin{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "jdoe", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_LoginSuspendedAccount(t *testing.T) {
	user := storedUser(t, "jdoe", "secret123", models.RoleStudent, models.StatusSuspended)
	repo := &fakeUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return user, nil
		},
	}
	svc := newTestAuthService(repo, BootstrapAdmin{})

	// Correct credentials still fail for a suspended account
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "jdoe", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrAccountSuspended)
}

func TestAuthService_LoginRequiredRole(t *testing.T) {
	cases := []struct {
		name         string
		role         models.Role
		requiredRole string
		wantErr      error
	}{
		{"matching role", models.RoleTeacher, "teacher", nil},
		{"admin passes any section", models.RoleAdmin, "student", nil},
		{"mismatched role", models.RoleStudent, "teacher", apperrors.ErrPermissionDenied},
		{"no required role", models.RoleStudent, "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := storedUser(t, "jdoe", "secret123", tc.role, models.StatusActive)
			repo := &fakeUserRepo{
				getByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
					return user, nil
				},
			}
			svc := newTestAuthService(repo, BootstrapAdmin{})

			_, err := svc.Login(context.Background(), &dto.LoginRequest{
				Username: "jdoe", Password: "secret123", RequiredRole: tc.requiredRole,
			})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepo{}, BootstrapAdmin{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_LoginStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := &fakeUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return nil, storeErr
		},
	}
	svc := newTestAuthService(repo, BootstrapAdmin{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "jdoe", Password: "secret123"})
	assert.ErrorIs(t, err, storeErr)
}

func TestAuthService_BootstrapLogin(t *testing.T) {
	bootstrap := BootstrapAdmin{Username: "admin", Password: "bootstrap-pass"}
	svc := newTestAuthService(&fakeUserRepo{}, bootstrap)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "bootstrap-pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.UserID)
	assert.Equal(t, "admin", resp.Role)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthService_BootstrapLoginWrongPassword(t *testing.T) {
	bootstrap := BootstrapAdmin{Username: "admin", Password: "bootstrap-pass"}
	svc := newTestAuthService(&fakeUserRepo{}, bootstrap)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_BootstrapDisabledWithoutPassword(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepo{}, BootstrapAdmin{Username: "admin"})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_DirectoryUserShadowsBootstrap(t *testing.T) {
	// A directory row with the bootstrap username wins over the
	// configuration-backed credentials.
	user := storedUser(t, "admin", "row-password", models.RoleAdmin, models.StatusActive)
	repo := &fakeUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return user, nil
		},
	}
	svc := newTestAuthService(repo, BootstrapAdmin{Username: "admin", Password: "bootstrap-pass"})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "bootstrap-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "row-password"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserID)
}
