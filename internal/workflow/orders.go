package workflow

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fsdevblog/orderflow/internal/domain"
)

// CreateOrder создает заказ клиента процедурой createOrder и возвращает его id.
// Процедура резервирует склад и считает итоговую сумму.
func (e *Engine) CreateOrder(ctx context.Context, customerID int64, lines []domain.OrderLine) (int64, error) {
	if len(lines) == 0 {
		return 0, fmt.Errorf("%w: order must contain at least one product", domain.ErrInvalidArgument)
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return 0, fmt.Errorf("%w: quantity of product %d must be positive", domain.ErrInvalidArgument, line.ProductID)
		}
	}

	payload, err := json.Marshal(lines)
	if err != nil {
		return 0, fmt.Errorf("marshal order lines: %w", err)
	}

	var orderID int64
	err = e.run(ctx, "create_order", func(ctx context.Context) error {
		row, ok := e.gw.Query(ctx, callCreateOrder, customerID, string(payload)).First()
		if !ok {
			return stepFailed("create order for user %d", customerID)
		}
		id, parseErr := row.Int64(0)
		if parseErr != nil {
			return stepFailed("parse new order id: %s", parseErr)
		}

		details := fmt.Sprintf("order created with %d product(s)", len(lines))
		if auditErr := e.audit(ctx, domain.EntityOrder, id, domain.AuditInsert, customerID, details); auditErr != nil {
			return auditErr
		}
		orderID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// OverrideStatus ручная смена статуса администратором процедурой updateOrderStatus.
// Переход проверяется по той же машине состояний, что и в остальных сценариях, по строке,
// заблокированной внутри транзакции. Отмена и возврат возвращают позиции на склад.
func (e *Engine) OverrideStatus(ctx context.Context, orderID int64, status domain.OrderStatus, actorID int64) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown order status `%s`", domain.ErrInvalidArgument, status)
	}

	return e.run(ctx, "override_status", func(ctx context.Context) error {
		state, err := e.readOrder(ctx, selectOrderForUpdate, orderID)
		if err != nil {
			return err
		}
		if !state.Status.CanTransitionTo(status) {
			return preconditionFailed("order %d cannot move from `%s` to `%s`", orderID, state.Status, status)
		}

		row, ok := e.gw.Query(ctx, callUpdateOrderStatus, orderID, string(status), actorID).First()
		if !ok || !row.Bool(0) {
			e.l.WithField("order_id", orderID).Warn("updateOrderStatus reported failure")
			return stepFailed("update status of order %d", orderID)
		}

		if status == domain.OrderStatusCanceled || status == domain.OrderStatusReturned {
			return e.restoreOrderStock(ctx, orderID)
		}
		return nil
	})
}
