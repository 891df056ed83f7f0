package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository/postgres"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *domain.User
		wantErr bool
	}{
		{
			name: "successful creation",
			user: &domain.User{
				ID:           uuid.New(),
				Email:        "first@example.com",
				PasswordHash: "hashedpassword",
				Name:         "First",
				Role:         domain.RoleCustomer,
				IsActive:     true,
			},
			wantErr: false,
		},
		{
			name: "duplicate email",
			user: &domain.User{
				ID:           uuid.New(),
				Email:        "first@example.com", // Same as above
				PasswordHash: "hashedpassword2",
				Name:         "Second",
				Role:         domain.RoleCustomer,
				IsActive:     true,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(ctx, tt.user)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().WithEmail("lookup@example.com").Build(t, testDB.DB)

	got, err := repo.GetByEmail(ctx, "lookup@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_TouchLastLogin(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	require.Nil(t, user.LastLogin)

	at := time.Now()
	require.NoError(t, repo.TouchLastLogin(ctx, user.ID, at))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.WithinDuration(t, at, *got.LastLogin, time.Second)

	// Only last_login moved.
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
	assert.Equal(t, user.Email, got.Email)
}

func TestUserRepository_ListAndCount(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	testutil.NewUserBuilder().WithRole(domain.RoleAdmin).Build(t, testDB.DB)
	testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.NewUserBuilder().Build(t, testDB.DB)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	admin := domain.RoleAdmin
	admins, err := repo.List(ctx, &admin)
	require.NoError(t, err)
	assert.Len(t, admins, 1)

	customers, err := repo.CountCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), customers)
}
