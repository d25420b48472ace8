package workflow

import (
	"context"
	"fmt"

	"github.com/fsdevblog/orderflow/internal/domain"
)

// AddItem добавляет товар в pending заказ клиента по текущей цене товара, резервирует
// количество на складе и пересчитывает итоговую сумму заказа.
func (e *Engine) AddItem(ctx context.Context, orderID, customerID, productID int64, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrInvalidArgument, quantity)
	}

	return e.run(ctx, "add_item", func(ctx context.Context) error {
		state, err := e.readOrder(ctx, selectOrderForUpdate, orderID)
		if err != nil {
			return err
		}
		if state.UserID != customerID || state.Status != domain.OrderStatusPending {
			return preconditionFailed("items cannot be added to order %d", orderID)
		}

		price, ok := e.gw.Query(ctx, selectProductPrice, productID).Scalar()
		if !ok {
			return fmt.Errorf("%w: product %d", domain.ErrRecordNotFound, productID)
		}

		if !e.gw.ExecuteAffecting(ctx, reserveStock, productID, quantity) {
			return preconditionFailed("not enough stock of product %d", productID)
		}
		if !e.gw.Execute(ctx, insertOrderItem, orderID, productID, quantity, price) {
			return stepFailed("insert item into order %d", orderID)
		}
		if !e.gw.ExecuteAffecting(ctx, recalculateOrderTotal, orderID) {
			return stepFailed("recalculate total of order %d", orderID)
		}

		details := fmt.Sprintf("product %d x%d added to order %d", productID, quantity, orderID)
		return e.audit(ctx, domain.EntityOrderItem, orderID, domain.AuditInsert, customerID, details)
	})
}

// RemoveItem удаляет позицию из pending заказа клиента и возвращает ее количество на склад.
func (e *Engine) RemoveItem(ctx context.Context, orderItemID, customerID int64) error {
	return e.run(ctx, "remove_item", func(ctx context.Context) error {
		row, ok := e.gw.Query(ctx, selectOwnedPendingItem, orderItemID, customerID).First()
		if !ok {
			return preconditionFailed("item %d cannot be removed", orderItemID)
		}
		orderID, err := row.Int64(0)
		if err != nil {
			return stepFailed("parse order id: %s", err)
		}
		productID, err := row.Int64(1)
		if err != nil {
			return stepFailed("parse product id: %s", err)
		}
		quantity, err := row.Int(2)
		if err != nil {
			return stepFailed("parse quantity: %s", err)
		}

		if !e.gw.ExecuteAffecting(ctx, deleteOrderItem, orderItemID) {
			return stepFailed("delete item %d", orderItemID)
		}
		if !e.gw.ExecuteAffecting(ctx, restoreStock, productID, quantity) {
			return stepFailed("restore stock of product %d", productID)
		}
		if !e.gw.ExecuteAffecting(ctx, recalculateOrderTotal, orderID) {
			return stepFailed("recalculate total of order %d", orderID)
		}

		details := fmt.Sprintf("item %d removed from order %d", orderItemID, orderID)
		return e.audit(ctx, domain.EntityOrderItem, orderItemID, domain.AuditDelete, customerID, details)
	})
}
