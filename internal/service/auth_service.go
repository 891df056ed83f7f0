package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/config"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/mailer"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenPurpose = "password_reset"

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	mail        mailer.Mailer
	cfg         *config.Config
	log         *logrus.Logger
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, mail mailer.Mailer, cfg *config.Config, log *logrus.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		mail:        mail,
		cfg:         cfg,
		log:         log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Company  *string
	Phone    *string
}

type AuthResult struct {
	User      *domain.PublicUser
	Token     string
	ExpiresAt time.Time
}

// GenerateSessionToken returns 256 bits from crypto/rand as a 64-char hex
// string. Uniqueness is backed by the store's constraint on the token
// column.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword bcrypt-hashes a plaintext password at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login verifies credentials and issues a session. A missing user and a
// wrong password return the same error so callers cannot probe for
// registered emails. The active check runs only after the credentials
// succeed, so a disabled account with the right password is told so.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	result, err := s.createSession(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID, time.Now()); err != nil {
		s.log.WithError(err).WithField("userId", user.ID).Warn("failed to update last login")
	}

	return result, nil
}

// Register creates a customer account and logs it in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Name:         input.Name,
		Role:         domain.RoleCustomer,
		Company:      input.Company,
		Phone:        input.Phone,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.createSession(ctx, user)
}

// createSession writes a session row. A create failure is treated as a
// token collision: regenerate once and retry, then surface the error.
func (s *AuthService) createSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	expiresAt := time.Now().Add(s.cfg.SessionExpiry())

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		token, err := GenerateSessionToken()
		if err != nil {
			return nil, err
		}

		session := &domain.Session{
			ID:        uuid.New(),
			UserID:    user.ID,
			Token:     token,
			ExpiresAt: expiresAt,
		}

		if err := s.sessionRepo.Create(ctx, session); err != nil {
			lastErr = err
			continue
		}

		return &AuthResult{
			User:      user.Public(),
			Token:     token,
			ExpiresAt: expiresAt,
		}, nil
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrTokenCollision, lastErr)
}

// Validate resolves a session token to its owning user. Observed-dead
// sessions (expired, or owner deactivated) are deleted on the spot.
func (s *AuthService) Validate(ctx context.Context, token string) (*domain.PublicUser, error) {
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, err
	}

	if session.Expired(time.Now()) || session.User == nil || !session.User.IsActive {
		if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
			s.log.WithError(err).Warn("failed to delete stale session")
		}
		return nil, domain.ErrNotAuthenticated
	}

	return session.User.Public(), nil
}

// Logout deletes the session for the token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.DeleteByToken(ctx, token)
}

// RevokeAll deletes every session for a user. Called on deactivation and
// password change.
func (s *AuthService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	return s.sessionRepo.DeleteByUserID(ctx, userID)
}

// SweepExpired bulk-deletes sessions past their expiry. Validation
// re-checks expiry itself, so the sweep is hygiene, not correctness.
func (s *AuthService) SweepExpired(ctx context.Context) (int64, error) {
	return s.sessionRepo.DeleteExpired(ctx, time.Now())
}

// RequestPasswordReset emails a one-hour reset link. An unknown email is
// a silent success so the endpoint cannot be used to probe for accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	claims := jwt.MapClaims{
		"sub":     user.ID.String(),
		"purpose": resetTokenPurpose,
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.BaseURL, token)
	return s.mail.Send(ctx, user.Email, mailer.PasswordResetSubject(), mailer.PasswordResetBody(user.Name, resetURL))
}

// ResetPassword consumes a reset token, rehashes the password and revokes
// every live session for the user.
func (s *AuthService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidResetToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return domain.ErrInvalidResetToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != resetTokenPurpose {
		return domain.ErrInvalidResetToken
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return domain.ErrInvalidResetToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidResetToken
		}
		return err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return s.sessionRepo.DeleteByUserID(ctx, user.ID)
}
