package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/mailer"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MessageService struct {
	messageRepo repository.MessageRepository
	mail        mailer.Mailer
	log         *logrus.Logger
}

func NewMessageService(messageRepo repository.MessageRepository, mail mailer.Mailer, log *logrus.Logger) *MessageService {
	return &MessageService{messageRepo: messageRepo, mail: mail, log: log}
}

type SubmitMessageInput struct {
	Name    string
	Email   string
	Phone   *string
	Company *string
	Subject string
	Body    string
	Type    *domain.MessageType
}

func (s *MessageService) Submit(ctx context.Context, input SubmitMessageInput) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:   input.Phone,
		Company: input.Company,
		Subject: input.Subject,
		Body:    input.Body,
		Type:    domain.MessageContact,
		Status:  domain.MessageUnread,
	}
	if input.Type != nil {
		msg.Type = *input.Type
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) Get(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) List(ctx context.Context, filter domain.MessageFilter) ([]*domain.ContactMessage, error) {
	return s.messageRepo.List(ctx, filter)
}

func (s *MessageService) MarkRead(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	msg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg.Status == domain.MessageUnread {
		now := time.Now()
		msg.Status = domain.MessageRead
		msg.ReadAt = &now
		if err := s.messageRepo.Update(ctx, msg); err != nil {
			return nil, err
		}
	}
	return msg, nil
}

func (s *MessageService) SetStarred(ctx context.Context, id uuid.UUID, starred bool) (*domain.ContactMessage, error) {
	msg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	msg.IsStarred = starred
	if err := s.messageRepo.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Reply emails the sender and records the reply on the message.
func (s *MessageService) Reply(ctx context.Context, id uuid.UUID, adminID uuid.UUID, reply string) (*domain.ContactMessage, error) {
	msg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.mail.Send(ctx, msg.Email, "Re: "+msg.Subject, reply); err != nil {
		s.log.WithError(err).WithField("messageId", msg.ID).Error("failed to send reply")
		return nil, err
	}

	now := time.Now()
	msg.Status = domain.MessageReplied
	msg.ReplyMessage = &reply
	msg.RepliedAt = &now
	msg.RepliedBy = &adminID

	if err := s.messageRepo.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) Archive(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	msg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	msg.Status = domain.MessageArchived
	if err := s.messageRepo.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.messageRepo.Delete(ctx, id)
}
