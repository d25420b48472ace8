package operations

import (
	"context"
	"fmt"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/payment"
	"github.com/fsdevblog/orderflow/internal/workflow"
	"github.com/sirupsen/logrus"
)

// Customer операции клиента. Все операции над заказом проверяют, что заказ принадлежит клиенту.
type Customer struct {
	base
}

func NewCustomer(actor domain.User, gw workflow.Gateway, logger *logrus.Logger) *Customer {
	return &Customer{base: newBase(actor, domain.RoleCustomer, gw, logger)}
}

func (c *Customer) ListProducts(ctx context.Context) (Table, error) {
	if err := c.authorize(); err != nil {
		return Table{}, err
	}
	return c.table(ctx, ProductColumns, selectProducts), nil
}

func (c *Customer) CreateOrder(ctx context.Context, lines []domain.OrderLine) (int64, error) {
	if err := c.authorize(); err != nil {
		return 0, err
	}
	return c.engine.CreateOrder(ctx, c.actor.ID, lines) //nolint:wrapcheck
}

func (c *Customer) AddToOrder(ctx context.Context, orderID, productID int64, quantity int) error {
	if err := c.authorize(); err != nil {
		return err
	}
	return c.engine.AddItem(ctx, orderID, c.actor.ID, productID, quantity) //nolint:wrapcheck
}

func (c *Customer) RemoveFromOrder(ctx context.Context, orderItemID int64) error {
	if err := c.authorize(); err != nil {
		return err
	}
	return c.engine.RemoveItem(ctx, orderItemID, c.actor.ID) //nolint:wrapcheck
}

func (c *Customer) OrderHistory(ctx context.Context) (Table, error) {
	if err := c.authorize(); err != nil {
		return Table{}, err
	}
	return c.table(ctx, OrderHistoryColumns, selectCustomerOrders, c.actor.ID), nil
}

// ViewOrderStatus статус заказа клиента. Чужой заказ неотличим от несуществующего.
func (c *Customer) ViewOrderStatus(ctx context.Context, orderID int64) (domain.OrderStatus, error) {
	if err := c.authorize(); err != nil {
		return "", err
	}

	row, ok := c.gw.Query(ctx, selectOrderOwner, orderID).First()
	if !ok {
		return "", fmt.Errorf("%w: order %d", domain.ErrRecordNotFound, orderID)
	}
	owner, err := row.Int64(0)
	if err != nil || owner != c.actor.ID {
		return "", fmt.Errorf("%w: order %d", domain.ErrRecordNotFound, orderID)
	}
	return c.scalarStatus(ctx, callGetOrderStatus, orderID)
}

// MakePayment оплачивает заказ выбранным способом и возвращает идентификатор транзакции.
func (c *Customer) MakePayment(
	ctx context.Context,
	orderID int64,
	method payment.Method,
	details payment.Details,
) (string, error) {
	if err := c.authorize(); err != nil {
		return "", err
	}
	strategy, err := payment.NewStrategy(method, details)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}
	return c.engine.Pay(ctx, orderID, c.actor.ID, strategy) //nolint:wrapcheck
}

func (c *Customer) ReturnOrder(ctx context.Context, orderID int64) error {
	if err := c.authorize(); err != nil {
		return err
	}
	return c.engine.Return(ctx, orderID, c.actor.ID) //nolint:wrapcheck
}

// CancelOrder клиент может отменить только свой pending заказ.
func (c *Customer) CancelOrder(ctx context.Context, orderID int64) error {
	if err := c.authorize(); err != nil {
		return err
	}
	owner := c.actor.ID
	return c.engine.CancelPending(ctx, orderID, c.actor.ID, &owner) //nolint:wrapcheck
}
