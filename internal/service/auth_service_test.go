package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository/postgres"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/service"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*service.AuthService, *repository.Repositories, *testutil.TestDB) {
	t.Helper()
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	mail := &testutil.RecordingMailer{}
	authService := service.NewAuthService(repos.User, repos.Session, mail, testutil.TestConfig(), testutil.TestLogger())
	return authService, repos, testDB
}

func TestGenerateSessionToken(t *testing.T) {
	hexPattern := regexp.MustCompile(`^[0-9a-f]{64}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := service.GenerateSessionToken()
		require.NoError(t, err)
		assert.Regexp(t, hexPattern, token)
		assert.False(t, seen[token], "token generated twice")
		seen[token] = true
	}
}

func TestAuthService_Login(t *testing.T) {
	authService, _, testDB := newAuthService(t)
	ctx := context.Background()

	user, password := testutil.NewUserBuilder().WithEmail("alice@example.com").Build(t, testDB.DB)
	_, disabledPassword := testutil.NewUserBuilder().WithEmail("disabled@example.com").Inactive().Build(t, testDB.DB)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: password,
		},
		{
			name:     "email is case and whitespace insensitive",
			email:    "  ALICE@Example.com ",
			password: password,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "not-the-password",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: password,
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "disabled account with correct password",
			email:    "disabled@example.com",
			password: disabledPassword,
			wantErr:  domain.ErrAccountDisabled,
		},
		{
			name:     "disabled account with wrong password",
			email:    "disabled@example.com",
			password: "not-the-password",
			wantErr:  domain.ErrInvalidCredentials,
		},
	}

	sessionCount := func(t *testing.T) int64 {
		t.Helper()
		var n int64
		require.NoError(t, testDB.DB.Model(&domain.Session{}).Count(&n).Error)
		return n
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := sessionCount(t)
			result, err := authService.Login(ctx, service.LoginInput{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				assert.Equal(t, before, sessionCount(t), "failed login must not touch the session store")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, result.User.ID)
			assert.Len(t, result.Token, 64)
			assert.True(t, result.ExpiresAt.After(time.Now()))
		})
	}
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	authService, _, testDB := newAuthService(t)
	ctx := context.Background()

	testutil.NewUserBuilder().WithEmail("bob@example.com").Build(t, testDB.DB)

	_, errUnknown := authService.Login(ctx, service.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	_, errWrong := authService.Login(ctx, service.LoginInput{Email: "bob@example.com", Password: "whatever"})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuthService_Login_UpdatesLastLogin(t *testing.T) {
	authService, repos, testDB := newAuthService(t)
	ctx := context.Background()

	user, password := testutil.NewUserBuilder().Build(t, testDB.DB)
	require.Nil(t, user.LastLogin)

	_, err := authService.Login(ctx, service.LoginInput{Email: user.Email, Password: password})
	require.NoError(t, err)

	reloaded, err := repos.User.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.LastLogin)
}

func TestAuthService_Register(t *testing.T) {
	authService, _, _ := newAuthService(t)
	ctx := context.Background()

	result, err := authService.Register(ctx, service.RegisterInput{
		Email:    "New.User@Example.com",
		Password: "secret123",
		Name:     "New User",
	})
	require.NoError(t, err)
	assert.Equal(t, "new.user@example.com", result.User.Email)
	assert.Equal(t, domain.RoleCustomer, result.User.Role)
	assert.Len(t, result.Token, 64)

	// The new session is immediately valid.
	me, err := authService.Validate(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, me.ID)

	// Same email again, any casing, is rejected.
	_, err = authService.Register(ctx, service.RegisterInput{
		Email:    "new.user@example.com",
		Password: "other",
		Name:     "Imposter",
	})
	require.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestAuthService_Validate(t *testing.T) {
	authService, repos, testDB := newAuthService(t)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	disabled, _ := testutil.NewUserBuilder().Inactive().Build(t, testDB.DB)

	active := testutil.NewSessionBuilder(user.ID).Build(t, testDB.DB)
	expired := testutil.NewSessionBuilder(user.ID).
		ExpiredAt(time.Now().Add(-time.Second)).
		Build(t, testDB.DB)
	orphaned := testutil.NewSessionBuilder(disabled.ID).Build(t, testDB.DB)

	t.Run("empty token", func(t *testing.T) {
		_, err := authService.Validate(ctx, "")
		require.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := authService.Validate(ctx, "deadbeef")
		require.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})

	t.Run("active session", func(t *testing.T) {
		got, err := authService.Validate(ctx, active.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("expired session is rejected and deleted", func(t *testing.T) {
		_, err := authService.Validate(ctx, expired.Token)
		require.ErrorIs(t, err, domain.ErrNotAuthenticated)

		_, err = repos.Session.GetByToken(ctx, expired.Token)
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("session of deactivated user is rejected and deleted", func(t *testing.T) {
		_, err := authService.Validate(ctx, orphaned.Token)
		require.ErrorIs(t, err, domain.ErrNotAuthenticated)

		_, err = repos.Session.GetByToken(ctx, orphaned.Token)
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("session expiring exactly now is expired", func(t *testing.T) {
		boundary := testutil.NewSessionBuilder(user.ID).
			ExpiredAt(time.Now()).
			Build(t, testDB.DB)

		_, err := authService.Validate(ctx, boundary.Token)
		require.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})
}

func TestAuthService_Logout(t *testing.T) {
	authService, repos, testDB := newAuthService(t)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	session := testutil.NewSessionBuilder(user.ID).Build(t, testDB.DB)

	require.NoError(t, authService.Logout(ctx, session.Token))

	_, err := repos.Session.GetByToken(ctx, session.Token)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Repeated and empty logouts are no-ops.
	require.NoError(t, authService.Logout(ctx, session.Token))
	require.NoError(t, authService.Logout(ctx, ""))
}

func TestAuthService_RevokeAll(t *testing.T) {
	authService, repos, testDB := newAuthService(t)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	s1 := testutil.NewSessionBuilder(alice.ID).Build(t, testDB.DB)
	s2 := testutil.NewSessionBuilder(alice.ID).Build(t, testDB.DB)
	other := testutil.NewSessionBuilder(bob.ID).Build(t, testDB.DB)

	require.NoError(t, authService.RevokeAll(ctx, alice.ID))

	for _, token := range []string{s1.Token, s2.Token} {
		_, err := repos.Session.GetByToken(ctx, token)
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	}

	// Other users' sessions survive.
	_, err := repos.Session.GetByToken(ctx, other.Token)
	require.NoError(t, err)
}

func TestAuthService_SweepExpired(t *testing.T) {
	authService, repos, testDB := newAuthService(t)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	live := testutil.NewSessionBuilder(user.ID).Build(t, testDB.DB)
	testutil.NewSessionBuilder(user.ID).ExpiredAt(time.Now().Add(-time.Hour)).Build(t, testDB.DB)
	testutil.NewSessionBuilder(user.ID).ExpiredAt(time.Now().Add(-time.Minute)).Build(t, testDB.DB)

	removed, err := authService.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = repos.Session.GetByToken(ctx, live.Token)
	require.NoError(t, err)

	// Nothing left to sweep.
	removed, err = authService.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestAuthService_PasswordReset(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	mail := &testutil.RecordingMailer{}
	authService := service.NewAuthService(repos.User, repos.Session, mail, testutil.TestConfig(), testutil.TestLogger())
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().WithEmail("reset@example.com").Build(t, testDB.DB)
	session := testutil.NewSessionBuilder(user.ID).Build(t, testDB.DB)

	// Unknown email succeeds silently and sends nothing.
	require.NoError(t, authService.RequestPasswordReset(ctx, "ghost@example.com"))
	assert.Empty(t, mail.Sent)

	require.NoError(t, authService.RequestPasswordReset(ctx, "reset@example.com"))
	require.Len(t, mail.Sent, 1)
	assert.Equal(t, "reset@example.com", mail.Sent[0].To)

	tokenPattern := regexp.MustCompile(`token=([A-Za-z0-9._-]+)`)
	match := tokenPattern.FindStringSubmatch(mail.Sent[0].Body)
	require.Len(t, match, 2)
	resetToken := match[1]

	require.NoError(t, authService.ResetPassword(ctx, resetToken, "brand-new-pass"))

	// The new password works, the old sessions are revoked.
	_, err := authService.Login(ctx, service.LoginInput{Email: "reset@example.com", Password: "brand-new-pass"})
	require.NoError(t, err)

	_, err = repos.Session.GetByToken(ctx, session.Token)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Garbage tokens are rejected.
	require.ErrorIs(t, authService.ResetPassword(ctx, "not-a-token", "x"), domain.ErrInvalidResetToken)
}

// stub session repository used to exercise the collision retry without a
// database.
type collidingSessionRepo struct {
	failures int
	created  []*domain.Session
}

func (r *collidingSessionRepo) Create(ctx context.Context, session *domain.Session) error {
	if r.failures > 0 {
		r.failures--
		return errors.New("duplicate key value violates unique constraint")
	}
	r.created = append(r.created, session)
	return nil
}

func (r *collidingSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *collidingSessionRepo) DeleteByToken(ctx context.Context, token string) error { return nil }

func (r *collidingSessionRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (r *collidingSessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type stubUserRepo struct {
	repository.UserRepository
	user *domain.User
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) TouchLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	return nil
}

func TestAuthService_Login_TokenCollisionRetry(t *testing.T) {
	user, password := stubUser(t)

	t.Run("one collision is retried", func(t *testing.T) {
		sessions := &collidingSessionRepo{failures: 1}
		authService := service.NewAuthService(&stubUserRepo{user: user}, sessions, &testutil.RecordingMailer{}, testutil.TestConfig(), testutil.TestLogger())

		result, err := authService.Login(context.Background(), service.LoginInput{Email: user.Email, Password: password})
		require.NoError(t, err)
		require.Len(t, sessions.created, 1)
		assert.Equal(t, sessions.created[0].Token, result.Token)
	})

	t.Run("persistent failure surfaces", func(t *testing.T) {
		sessions := &collidingSessionRepo{failures: 2}
		authService := service.NewAuthService(&stubUserRepo{user: user}, sessions, &testutil.RecordingMailer{}, testutil.TestConfig(), testutil.TestLogger())

		_, err := authService.Login(context.Background(), service.LoginInput{Email: user.Email, Password: password})
		require.ErrorIs(t, err, domain.ErrTokenCollision)
	})
}

func stubUser(t *testing.T) (*domain.User, string) {
	t.Helper()
	password := "stub-password"
	hash, err := service.HashPassword(password)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "stub@example.com",
		PasswordHash: hash,
		Name:         "Stub",
		Role:         domain.RoleCustomer,
		IsActive:     true,
	}, password
}
