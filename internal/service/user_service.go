package service

import (
	"context"
	"errors"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserService covers the admin account-management surface.
type UserService struct {
	userRepo repository.UserRepository
	authSvc  *AuthService
	log      *logrus.Logger
}

func NewUserService(userRepo repository.UserRepository, authSvc *AuthService, log *logrus.Logger) *UserService {
	return &UserService{userRepo: userRepo, authSvc: authSvc, log: log}
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, role *domain.Role) ([]*domain.User, error) {
	return s.userRepo.List(ctx, role)
}

type UpdateUserInput struct {
	Name    *string
	Company *string
	Phone   *string
	Avatar  *string
	Role    *domain.Role
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Company != nil {
		user.Company = input.Company
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Avatar != nil {
		user.Avatar = input.Avatar
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate disables the account and revokes every live session, so the
// user is logged out everywhere at once. Validation would lazily catch
// the stale sessions anyway; the revoke makes it immediate.
func (s *UserService) Deactivate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = false
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.authSvc.RevokeAll(ctx, user.ID); err != nil {
		s.log.WithError(err).WithField("userId", user.ID).Error("failed to revoke sessions on deactivation")
		return nil, err
	}

	return user, nil
}

func (s *UserService) Reactivate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
