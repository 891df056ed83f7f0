package postgres

import (
	"context"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *messageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	var msg domain.ContactMessage
	err := r.db.WithContext(ctx).First(&msg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) List(ctx context.Context, filter domain.MessageFilter) ([]*domain.ContactMessage, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR subject ILIKE ?", like, like, like)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	if filter.IsStarred != nil {
		q = q.Where("is_starred = ?", *filter.IsStarred)
	}

	var messages []*domain.ContactMessage
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) Update(ctx context.Context, msg *domain.ContactMessage) error {
	return r.db.WithContext(ctx).Save(msg).Error
}

func (r *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ContactMessage{}, "id = ?", id).Error
}

func (r *messageRepository) CountByStatus(ctx context.Context, status domain.MessageStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ContactMessage{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
