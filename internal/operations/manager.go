package operations

import (
	"context"
	"fmt"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/workflow"
	"github.com/sirupsen/logrus"
)

// Manager операции менеджера: утверждение и отмена pending заказов, остатки на складе.
type Manager struct {
	base
}

func NewManager(actor domain.User, gw workflow.Gateway, logger *logrus.Logger) *Manager {
	return &Manager{base: newBase(actor, domain.RoleManager, gw, logger)}
}

func (m *Manager) PendingOrders(ctx context.Context) (Table, error) {
	if err := m.authorize(); err != nil {
		return Table{}, err
	}
	return m.table(ctx, PendingOrdersColumns, selectPendingOrders), nil
}

func (m *Manager) ApproveOrder(ctx context.Context, orderID int64) error {
	if err := m.authorize(); err != nil {
		return err
	}
	return m.engine.Approve(ctx, orderID, m.actor.ID) //nolint:wrapcheck
}

// UpdateStock устанавливает остаток товара. Отрицательное количество отклоняется до обращения к хранилищу.
func (m *Manager) UpdateStock(ctx context.Context, productID int64, quantity int) error {
	if err := m.authorize(); err != nil {
		return err
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", domain.ErrInvalidArgument)
	}

	if !m.gw.ExecuteAffecting(ctx, updateStock, productID, quantity) {
		return statementFailed("update stock of product %d", productID)
	}
	m.auditBestEffort(ctx, domain.EntityProduct, &productID, domain.AuditUpdate,
		fmt.Sprintf("stock quantity set to %d", quantity))
	return nil
}

func (m *Manager) ViewOrderStatus(ctx context.Context, orderID int64) (domain.OrderStatus, error) {
	if err := m.authorize(); err != nil {
		return "", err
	}
	return m.scalarStatus(ctx, selectOrderStatus, orderID)
}

// CancelOrder менеджер может отменить только pending заказ.
func (m *Manager) CancelOrder(ctx context.Context, orderID int64) error {
	if err := m.authorize(); err != nil {
		return err
	}
	return m.engine.CancelPending(ctx, orderID, m.actor.ID, nil) //nolint:wrapcheck
}

// ApprovedOrdersHistory заказы, утвержденные этим менеджером.
func (m *Manager) ApprovedOrdersHistory(ctx context.Context) (Table, error) {
	if err := m.authorize(); err != nil {
		return Table{}, err
	}
	return m.table(ctx, ApprovedColumns, selectApprovedByManager, m.actor.ID, approvedDetail), nil
}
