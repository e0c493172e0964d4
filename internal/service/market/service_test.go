package market_test

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/marketsvc/internal/domain"
	"github.com/vladislavdragonenkov/marketsvc/internal/service/market"
	"github.com/vladislavdragonenkov/marketsvc/internal/storage/memory"
)

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("component", "test")
}

func newTestService() *market.Service {
	store := memory.NewStore()
	store.SeedDemo()
	return market.NewService(store.Customers(), store.Orders(), nil, nil, loggerForTests())
}

func TestService_Customers(t *testing.T) {
	svc := newTestService()

	customers, err := svc.Customers()
	require.NoError(t, err)
	require.Len(t, customers, 3)
	require.Equal(t, "Alice Santos", customers[0].Name)
}

func TestService_PlaceOrderScenario(t *testing.T) {
	// Сценарий из демо-данных: товары 10 (5.00) и 11 (2.50),
	// заказ 2x10 + 1x11 даёт сумму 12.50.
	svc := newTestService()

	orderID, err := svc.PlaceOrder(domain.NewOrder{
		CustomerID: 1,
		Items: []domain.OrderLineInput{
			{ItemID: 10, Quantity: 2},
			{ItemID: 11, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Positive(t, orderID)

	total, err := svc.OrderTotal(orderID)
	require.NoError(t, err)
	require.Equal(t, int64(1250), total)

	lines, err := svc.OrdersForCustomer(1)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, int64(1000), lines[0].LineTotalMinor)
	require.Equal(t, int64(250), lines[1].LineTotalMinor)
}

func TestService_PlaceOrderEmptyItems(t *testing.T) {
	svc := newTestService()

	_, err := svc.PlaceOrder(domain.NewOrder{CustomerID: 1})
	require.ErrorIs(t, err, domain.ErrItemsRequired)
	require.True(t, domain.IsValidation(err))

	// Хранилище не должно быть затронуто.
	lines, listErr := svc.OrdersForCustomer(1)
	require.NoError(t, listErr)
	require.Empty(t, lines)
}

func TestService_PlaceOrderInvalidQuantity(t *testing.T) {
	svc := newTestService()

	_, err := svc.PlaceOrder(domain.NewOrder{
		CustomerID: 1,
		Items:      []domain.OrderLineInput{{ItemID: 10, Quantity: 0}},
	})
	require.ErrorIs(t, err, domain.ErrQuantityInvalid)
}

func TestService_PlaceOrderUnknownItemCollapsesError(t *testing.T) {
	svc := newTestService()

	_, err := svc.PlaceOrder(domain.NewOrder{
		CustomerID: 1,
		Items:      []domain.OrderLineInput{{ItemID: 999, Quantity: 1}},
	})
	// Первопричина (нарушение FK) логируется, наружу уходит только
	// обезличенный отказ.
	require.ErrorIs(t, err, domain.ErrOrderRejected)
	require.NotErrorIs(t, err, domain.ErrConstraint)

	lines, listErr := svc.OrdersForCustomer(1)
	require.NoError(t, listErr)
	require.Empty(t, lines)
}

func TestService_OrderTotalUnknownOrder(t *testing.T) {
	svc := newTestService()

	_, err := svc.OrderTotal(404)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestService_OrdersBetween(t *testing.T) {
	svc := newTestService()

	before := time.Now().UTC().Add(-time.Minute)
	_, err := svc.PlaceOrder(domain.NewOrder{
		CustomerID: 2,
		Items:      []domain.OrderLineInput{{ItemID: 13, Quantity: 1}},
	})
	require.NoError(t, err)
	after := time.Now().UTC().Add(time.Minute)

	lines, err := svc.OrdersBetween(before, after)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, "Bob Keller", lines[0].CustomerName)
	require.Equal(t, "Bagel", lines[0].ItemName)
	require.Equal(t, int64(420), lines[0].LineTotalMinor)

	// Диапазон в прошлом — пусто.
	empty, err := svc.OrdersBetween(before.Add(-time.Hour), before.Add(-time.Minute))
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestService_RepeatedReadsIdentical(t *testing.T) {
	svc := newTestService()

	_, err := svc.PlaceOrder(domain.NewOrder{
		CustomerID: 1,
		Items:      []domain.OrderLineInput{{ItemID: 10, Quantity: 1}},
	})
	require.NoError(t, err)

	first, err := svc.OrdersForCustomer(1)
	require.NoError(t, err)
	second, err := svc.OrdersForCustomer(1)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
