package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/mailer"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type QuoteService struct {
	quoteRepo repository.QuoteRepository
	orderSvc  *OrderService
	mail      mailer.Mailer
	log       *logrus.Logger
}

func NewQuoteService(quoteRepo repository.QuoteRepository, orderSvc *OrderService, mail mailer.Mailer, log *logrus.Logger) *QuoteService {
	return &QuoteService{quoteRepo: quoteRepo, orderSvc: orderSvc, mail: mail, log: log}
}

type QuoteItemInput struct {
	ProductID   *uuid.UUID
	ProductName string
	Description *string
	Quantity    int
}

type SubmitQuoteInput struct {
	CustomerID      *uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	Company         *string
	Items           []QuoteItemInput
	CustomerMessage *string
}

// Submit records a quote request and acknowledges it by email. The email
// is best-effort; the quote is stored either way.
func (s *QuoteService) Submit(ctx context.Context, input SubmitQuoteInput) (*domain.Quote, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	var items []domain.QuoteItem
	for _, in := range input.Items {
		if in.Quantity < 1 {
			continue
		}
		items = append(items, domain.QuoteItem{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Description: in.Description,
			Quantity:    in.Quantity,
		})
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	number, err := s.nextQuoteNumber(ctx)
	if err != nil {
		return nil, err
	}

	quote := &domain.Quote{
		ID:              uuid.New(),
		QuoteNumber:     number,
		CustomerID:      input.CustomerID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   strings.ToLower(strings.TrimSpace(input.CustomerEmail)),
		CustomerPhone:   input.CustomerPhone,
		Company:         input.Company,
		Items:           itemsJSON,
		Currency:        domain.CurrencyUSD,
		Status:          domain.QuotePending,
		CustomerMessage: input.CustomerMessage,
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}

	if err := s.mail.Send(ctx, quote.CustomerEmail, mailer.QuoteReceivedSubject(quote.QuoteNumber), mailer.QuoteReceivedBody(quote)); err != nil {
		s.log.WithError(err).WithField("quoteNumber", quote.QuoteNumber).Error("failed to send quote acknowledgement")
	}

	return quote, nil
}

func (s *QuoteService) Get(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) List(ctx context.Context, filter domain.QuoteFilter) ([]*domain.Quote, error) {
	return s.quoteRepo.List(ctx, filter)
}

func (s *QuoteService) MarkReviewed(ctx context.Context, id uuid.UUID, internalNotes *string) (*domain.Quote, error) {
	quote, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	quote.Status = domain.QuoteReviewed
	quote.ReviewedAt = &now
	if internalNotes != nil {
		quote.InternalNotes = internalNotes
	}

	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

type RespondQuoteInput struct {
	ResponseMessage string
	ItemPrices      map[int]float64 // item index -> unit price
	Discount        *float64
	ValidUntil      *time.Time
}

// Respond prices the quote and sends the response to the customer.
func (s *QuoteService) Respond(ctx context.Context, id uuid.UUID, input RespondQuoteInput) (*domain.Quote, error) {
	quote, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote.Status == domain.QuoteConverted {
		return nil, domain.ErrQuoteConverted
	}

	var items []domain.QuoteItem
	if err := json.Unmarshal(quote.Items, &items); err != nil {
		return nil, err
	}

	var subtotal float64
	for i := range items {
		if price, ok := input.ItemPrices[i]; ok {
			total := price * float64(items[i].Quantity)
			items[i].UnitPrice = &price
			items[i].TotalPrice = &total
		}
		if items[i].TotalPrice != nil {
			subtotal += *items[i].TotalPrice
		}
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if input.Discount != nil {
		quote.Discount = *input.Discount
	}
	total := subtotal - quote.Discount

	quote.Items = itemsJSON
	quote.Subtotal = &subtotal
	quote.Total = &total
	quote.Status = domain.QuoteSent
	quote.ResponseMessage = &input.ResponseMessage
	quote.ValidUntil = input.ValidUntil
	quote.SentAt = &now

	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	if err := s.mail.Send(ctx, quote.CustomerEmail, mailer.QuoteResponseSubject(quote.QuoteNumber), mailer.QuoteResponseBody(quote, input.ResponseMessage)); err != nil {
		s.log.WithError(err).WithField("quoteNumber", quote.QuoteNumber).Error("failed to send quote response")
	}

	return quote, nil
}

func (s *QuoteService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.QuoteStatus) (*domain.Quote, error) {
	quote, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote.Status == domain.QuoteConverted {
		return nil, domain.ErrQuoteConverted
	}

	now := time.Now()
	quote.Status = status
	if status == domain.QuoteAccepted || status == domain.QuoteRejected {
		quote.RespondedAt = &now
	}

	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// Convert turns an accepted quote into an order for the linked customer.
// The quote must already be priced and belong to a registered customer.
func (s *QuoteService) Convert(ctx context.Context, id uuid.UUID, shipping domain.ShippingAddress) (*domain.Order, error) {
	quote, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote.Status == domain.QuoteConverted {
		return nil, domain.ErrQuoteConverted
	}
	if quote.CustomerID == nil {
		return nil, domain.ErrUserNotFound
	}

	var items []domain.QuoteItem
	if err := json.Unmarshal(quote.Items, &items); err != nil {
		return nil, err
	}

	var orderItems []OrderItemInput
	for _, item := range items {
		if item.ProductID == nil {
			continue
		}
		orderItems = append(orderItems, OrderItemInput{
			ProductID: *item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	if len(orderItems) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	order, err := s.orderSvc.Create(ctx, CreateOrderInput{
		CustomerID:      *quote.CustomerID,
		Items:           orderItems,
		ShippingAddress: shipping,
		Discount:        quote.Discount,
	})
	if err != nil {
		return nil, err
	}

	quote.Status = domain.QuoteConverted
	quote.OrderID = &order.ID
	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *QuoteService) nextQuoteNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	count, err := s.quoteRepo.CountForYear(ctx, year)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("QTE-%d-%03d", year, count+1), nil
}
