package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository/postgres"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/service"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuoteService(t *testing.T) (*service.QuoteService, *repository.Repositories, *testutil.RecordingMailer, *testutil.TestDB) {
	t.Helper()
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	mail := &testutil.RecordingMailer{}
	orderService := service.NewOrderService(repos.Order, repos.Product, repos.User, repos.Settings, mail, testutil.TestLogger())
	quoteService := service.NewQuoteService(repos.Quote, orderService, mail, testutil.TestLogger())
	return quoteService, repos, mail, testDB
}

func TestQuoteService_Submit(t *testing.T) {
	quoteService, _, mail, _ := newQuoteService(t)
	ctx := context.Background()

	quote, err := quoteService.Submit(ctx, service.SubmitQuoteInput{
		CustomerName:  "Walk-in Customer",
		CustomerEmail: " Walkin@Example.COM ",
		Items: []service.QuoteItemInput{
			{ProductName: "Bulk Cement Mixer", Quantity: 3},
			{ProductName: "Ignored", Quantity: 0},
		},
	})
	require.NoError(t, err)

	assert.Regexp(t, `^QTE-\d{4}-\d{3}$`, quote.QuoteNumber)
	assert.Equal(t, domain.QuotePending, quote.Status)
	assert.Equal(t, "walkin@example.com", quote.CustomerEmail)
	assert.Nil(t, quote.CustomerID)

	// Zero-quantity lines are dropped.
	var items []domain.QuoteItem
	require.NoError(t, json.Unmarshal(quote.Items, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Bulk Cement Mixer", items[0].ProductName)

	// Acknowledgement email sent.
	require.Len(t, mail.Sent, 1)
	assert.Equal(t, "walkin@example.com", mail.Sent[0].To)

	_, err = quoteService.Submit(ctx, service.SubmitQuoteInput{
		CustomerName:  "Empty",
		CustomerEmail: "empty@example.com",
	})
	require.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestQuoteService_RespondAndConvert(t *testing.T) {
	quoteService, repos, mail, testDB := newQuoteService(t)
	ctx := context.Background()

	customer, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	product := testutil.NewProductBuilder().WithPrice(40).WithStock(20).Build(t, testDB.DB)

	quote, err := quoteService.Submit(ctx, service.SubmitQuoteInput{
		CustomerID:    &customer.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		Items: []service.QuoteItemInput{
			{ProductID: &product.ID, ProductName: product.Name, Quantity: 5},
		},
	})
	require.NoError(t, err)

	// Price the quote and send the response.
	responded, err := quoteService.Respond(ctx, quote.ID, service.RespondQuoteInput{
		ResponseMessage: "Here is our offer.",
		ItemPrices:      map[int]float64{0: 38.50},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteSent, responded.Status)
	require.NotNil(t, responded.Subtotal)
	assert.InDelta(t, 5*38.50, *responded.Subtotal, 0.001)
	require.NotNil(t, responded.SentAt)

	// Customer accepts.
	accepted, err := quoteService.UpdateStatus(ctx, quote.ID, domain.QuoteAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteAccepted, accepted.Status)
	require.NotNil(t, accepted.RespondedAt)

	// Convert to an order.
	order, err := quoteService.Convert(ctx, quote.ID, domain.ShippingAddress{
		Name:    customer.Name,
		Address: "1 Depot Road",
		City:    "Tripoli",
		Country: "Lebanon",
	})
	require.NoError(t, err)
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Equal(t, 5, order.ItemCount)

	converted, err := repos.Quote.GetByID(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteConverted, converted.Status)
	require.NotNil(t, converted.OrderID)
	assert.Equal(t, order.ID, *converted.OrderID)

	// A converted quote is frozen.
	_, err = quoteService.Respond(ctx, quote.ID, service.RespondQuoteInput{ResponseMessage: "again"})
	require.ErrorIs(t, err, domain.ErrQuoteConverted)
	_, err = quoteService.Convert(ctx, quote.ID, domain.ShippingAddress{})
	require.ErrorIs(t, err, domain.ErrQuoteConverted)

	// Acknowledgement, response and order confirmation were all sent.
	assert.GreaterOrEqual(t, len(mail.Sent), 3)
}

func TestQuoteService_Convert_RequiresLinkedCustomer(t *testing.T) {
	quoteService, _, _, _ := newQuoteService(t)
	ctx := context.Background()

	quote, err := quoteService.Submit(ctx, service.SubmitQuoteInput{
		CustomerName:  "Anonymous",
		CustomerEmail: "anon@example.com",
		Items: []service.QuoteItemInput{
			{ProductName: "Unlisted Item", Quantity: 1},
		},
	})
	require.NoError(t, err)

	_, err = quoteService.Convert(ctx, quote.ID, domain.ShippingAddress{})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
