package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexadigitall/platform/internal/app/models"
	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/pkg/apperrors"
	"github.com/hexadigitall/platform/internal/pkg/auth"
)

func TestCreateUser_HashesPassword(t *testing.T) {
	var created *models.User
	repo := &fakeUserRepo{
		createFn: func(ctx context.Context, user *models.User) (int64, error) {
			created = user
			return 3, nil
		},
	}
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Username:    "newteacher",
		Email:       "t@example.com",
		DisplayName: "New Teacher",
		Role:        "teacher",
		Password:    "plaintext-pw",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, models.StatusActive, created.Status)
	assert.NotEqual(t, "plaintext-pw", created.PasswordHash)
	assert.NotEmpty(t, created.PasswordSalt)
	assert.True(t, auth.CheckPassword("plaintext-pw", created.PasswordHash, created.PasswordSalt))
}

func TestUpdateUser_PartialUpdate(t *testing.T) {
	existing := &models.User{
		ID: 3, Username: "jdoe", Email: "old@example.com", DisplayName: "J Doe",
		Role: models.RoleTeacher, Status: models.StatusActive,
		PasswordHash: "oldhash", PasswordSalt: "oldsalt",
	}
	var updated *models.User
	repo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, user *models.User) error {
			updated = user
			return nil
		},
	}
	svc := NewUserService(repo, zerolog.Nop())

	status := "suspended"
	_, err := svc.UpdateUser(context.Background(), 3, &dto.UpdateUserRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuspended, updated.Status)
	// Untouched fields survive
	assert.Equal(t, "old@example.com", updated.Email)
	assert.Equal(t, models.RoleTeacher, updated.Role)
	assert.Equal(t, "oldhash", updated.PasswordHash)
}

func TestUpdateUser_PasswordChangeRotatesSalt(t *testing.T) {
	existing := &models.User{
		ID: 3, Username: "jdoe", Role: models.RoleStudent, Status: models.StatusActive,
		PasswordHash: "oldhash", PasswordSalt: "oldsalt",
	}
	repo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return existing, nil
		},
	}
	svc := NewUserService(repo, zerolog.Nop())

	password := "fresh-password"
	user, err := svc.UpdateUser(context.Background(), 3, &dto.UpdateUserRequest{Password: &password})
	require.NoError(t, err)
	assert.NotEqual(t, "oldhash", user.PasswordHash)
	assert.NotEqual(t, "oldsalt", user.PasswordSalt)
	assert.True(t, auth.CheckPassword("fresh-password", user.PasswordHash, user.PasswordSalt))
}

func TestUpdateUser_UnknownUser(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, zerolog.Nop())

	email := "new@example.com"
	_, err := svc.UpdateUser(context.Background(), 404, &dto.UpdateUserRequest{Email: &email})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestListUsers_Pagination(t *testing.T) {
	var gotOffset uint64
	var gotLimit int
	repo := &fakeUserRepo{
		listFn: func(ctx context.Context, offset uint64, limit int) ([]*models.User, error) {
			gotOffset, gotLimit = offset, limit
			return []*models.User{{ID: 1}, {ID: 2}}, nil
		},
		countFn: func(ctx context.Context) (int64, error) {
			return 42, nil
		},
	}
	svc := NewUserService(repo, zerolog.Nop())

	users, pagination, err := svc.ListUsers(context.Background(), 2, 20)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, uint64(20), gotOffset)
	assert.Equal(t, 20, gotLimit)
	assert.Equal(t, int64(42), pagination.TotalItems)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
}
