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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (*service.OrderService, *repository.Repositories, *testutil.RecordingMailer, *testutil.TestDB) {
	t.Helper()
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	mail := &testutil.RecordingMailer{}
	orderService := service.NewOrderService(repos.Order, repos.Product, repos.User, repos.Settings, mail, testutil.TestLogger())
	return orderService, repos, mail, testDB
}

func TestOrderService_Create(t *testing.T) {
	orderService, repos, mail, testDB := newOrderService(t)
	ctx := context.Background()

	customer, _ := testutil.NewUserBuilder().WithEmail("buyer@example.com").Build(t, testDB.DB)
	drill := testutil.NewProductBuilder().WithPrice(100).WithStock(10).Build(t, testDB.DB)
	grinder := testutil.NewProductBuilder().WithPrice(25.50).WithStock(4).Build(t, testDB.DB)

	address := domain.ShippingAddress{
		Name:    "Buyer",
		Address: "12 Industrial Ave",
		City:    "Beirut",
		Country: "Lebanon",
	}

	order, err := orderService.Create(ctx, service.CreateOrderInput{
		CustomerID: customer.ID,
		Items: []service.OrderItemInput{
			{ProductID: drill.ID, Quantity: 2},
			{ProductID: grinder.ID, Quantity: 1},
		},
		ShippingAddress: address,
	})
	require.NoError(t, err)

	// Default settings: 11% tax, flat 10 shipping, no free threshold.
	subtotal := 2*100.0 + 25.50
	assert.InDelta(t, subtotal, order.Subtotal, 0.001)
	assert.InDelta(t, 10.0, order.ShippingCost, 0.001)
	assert.InDelta(t, subtotal*0.11, order.Tax, 0.001)
	assert.InDelta(t, subtotal+10+subtotal*0.11, order.Total, 0.001)
	assert.Equal(t, 3, order.ItemCount)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, domain.PaymentPending, order.PaymentStatus)
	assert.Equal(t, "buyer@example.com", order.CustomerEmail)
	assert.Regexp(t, `^ORD-\d{4}-\d{3}$`, order.OrderNumber)

	// Items are priced from the catalog, not the request.
	var items []domain.OrderItem
	require.NoError(t, json.Unmarshal(order.Items, &items))
	require.Len(t, items, 2)
	assert.Equal(t, 100.0, items[0].UnitPrice)
	assert.Equal(t, 200.0, items[0].TotalPrice)

	// Stock is decremented.
	reloaded, err := repos.Product.GetByID(ctx, drill.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, reloaded.StockQuantity)

	// Confirmation email recorded.
	require.Len(t, mail.Sent, 1)
	assert.Equal(t, "buyer@example.com", mail.Sent[0].To)
	assert.Contains(t, mail.Sent[0].Subject, order.OrderNumber)
}

func TestOrderService_Create_Errors(t *testing.T) {
	orderService, _, _, testDB := newOrderService(t)
	ctx := context.Background()

	customer, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	product := testutil.NewProductBuilder().Build(t, testDB.DB)

	t.Run("no items", func(t *testing.T) {
		_, err := orderService.Create(ctx, service.CreateOrderInput{CustomerID: customer.ID})
		require.ErrorIs(t, err, domain.ErrEmptyOrder)
	})

	t.Run("all quantities below one", func(t *testing.T) {
		_, err := orderService.Create(ctx, service.CreateOrderInput{
			CustomerID: customer.ID,
			Items:      []service.OrderItemInput{{ProductID: product.ID, Quantity: 0}},
		})
		require.ErrorIs(t, err, domain.ErrEmptyOrder)
	})

	t.Run("unknown customer", func(t *testing.T) {
		_, err := orderService.Create(ctx, service.CreateOrderInput{
			CustomerID: uuid.New(),
			Items:      []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		})
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := orderService.Create(ctx, service.CreateOrderInput{
			CustomerID: customer.ID,
			Items:      []service.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
		})
		require.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	orderService, _, _, testDB := newOrderService(t)
	ctx := context.Background()

	customer, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	product := testutil.NewProductBuilder().Build(t, testDB.DB)

	newOrder := func(t *testing.T) *domain.Order {
		t.Helper()
		order, err := orderService.Create(ctx, service.CreateOrderInput{
			CustomerID: customer.ID,
			Items:      []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		return order
	}

	t.Run("full lifecycle", func(t *testing.T) {
		order := newOrder(t)
		for _, status := range []domain.OrderStatus{
			domain.OrderConfirmed,
			domain.OrderProcessing,
			domain.OrderShipped,
			domain.OrderDelivered,
		} {
			updated, err := orderService.UpdateStatus(ctx, order.ID, status)
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
		}
	})

	t.Run("shipped stamps timestamp", func(t *testing.T) {
		order := newOrder(t)
		_, err := orderService.UpdateStatus(ctx, order.ID, domain.OrderConfirmed)
		require.NoError(t, err)
		_, err = orderService.UpdateStatus(ctx, order.ID, domain.OrderProcessing)
		require.NoError(t, err)
		updated, err := orderService.UpdateStatus(ctx, order.ID, domain.OrderShipped)
		require.NoError(t, err)
		require.NotNil(t, updated.ShippedAt)
	})

	t.Run("illegal transition", func(t *testing.T) {
		order := newOrder(t)
		_, err := orderService.UpdateStatus(ctx, order.ID, domain.OrderDelivered)
		require.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		order := newOrder(t)
		_, err := orderService.UpdateStatus(ctx, order.ID, domain.OrderCancelled)
		require.NoError(t, err)
		_, err = orderService.UpdateStatus(ctx, order.ID, domain.OrderConfirmed)
		require.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestOrderService_MarkPaid(t *testing.T) {
	orderService, _, _, testDB := newOrderService(t)
	ctx := context.Background()

	customer, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	product := testutil.NewProductBuilder().Build(t, testDB.DB)

	order, err := orderService.Create(ctx, service.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	paid, err := orderService.MarkPaid(ctx, order.ID, "bank_transfer")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, paid.PaymentStatus)
	require.NotNil(t, paid.PaymentMethod)
	assert.Equal(t, "bank_transfer", *paid.PaymentMethod)
	require.NotNil(t, paid.PaidAt)
}

func TestOrderService_MarkPaid_TerminalStatus(t *testing.T) {
	orderService, _, _, testDB := newOrderService(t)
	ctx := context.Background()

	customer, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	product := testutil.NewProductBuilder().WithStock(10).Build(t, testDB.DB)

	newOrder := func(t *testing.T) *domain.Order {
		order, err := orderService.Create(ctx, service.CreateOrderInput{
			CustomerID: customer.ID,
			Items:      []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		return order
	}

	t.Run("cancelled order cannot be marked paid", func(t *testing.T) {
		order := newOrder(t)
		_, err := orderService.UpdateStatus(ctx, order.ID, domain.OrderCancelled)
		require.NoError(t, err)

		_, err = orderService.MarkPaid(ctx, order.ID, "bank_transfer")
		require.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("refunded order cannot be marked paid", func(t *testing.T) {
		order := newOrder(t)
		for _, status := range []domain.OrderStatus{
			domain.OrderConfirmed, domain.OrderProcessing, domain.OrderShipped,
			domain.OrderDelivered, domain.OrderRefunded,
		} {
			_, err := orderService.UpdateStatus(ctx, order.ID, status)
			require.NoError(t, err)
		}

		_, err := orderService.MarkPaid(ctx, order.ID, "bank_transfer")
		require.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestOrderService_GetForUser(t *testing.T) {
	orderService, _, _, testDB := newOrderService(t)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	admin, _ := testutil.NewUserBuilder().WithRole(domain.RoleAdmin).Build(t, testDB.DB)
	product := testutil.NewProductBuilder().Build(t, testDB.DB)

	order, err := orderService.Create(ctx, service.CreateOrderInput{
		CustomerID: owner.ID,
		Items:      []service.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = orderService.GetForUser(ctx, order.ID, owner.Public())
	require.NoError(t, err)

	_, err = orderService.GetForUser(ctx, order.ID, admin.Public())
	require.NoError(t, err)

	_, err = orderService.GetForUser(ctx, order.ID, stranger.Public())
	require.ErrorIs(t, err, domain.ErrForbidden)
}
