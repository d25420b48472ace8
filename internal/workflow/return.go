package workflow

import (
	"context"

	"github.com/fsdevblog/orderflow/internal/domain"
)

// Return оформляет возврат заказа клиентом.
//
// Алгоритм работы:
//  1. Проверяет возможность возврата функцией canReturnOrder.
//  2. Проверяет владельца и что переход в returned допустим.
//  3. Переводит заказ в returned и возвращает позиции на склад.
//  4. Пишет запись аудита.
func (e *Engine) Return(ctx context.Context, orderID, customerID int64) error {
	return e.run(ctx, "return", func(ctx context.Context) error {
		eligible, ok := e.gw.Query(ctx, callCanReturnOrder, orderID).First()
		if !ok || !eligible.Bool(0) {
			return preconditionFailed("order %d is not eligible for return", orderID)
		}

		state, err := e.readOrder(ctx, selectOrderForUpdate, orderID)
		if err != nil {
			return err
		}
		if state.UserID != customerID {
			return preconditionFailed("order %d does not belong to user %d", orderID, customerID)
		}
		if !state.Status.CanTransitionTo(domain.OrderStatusReturned) {
			return preconditionFailed("order %d is `%s` and cannot be returned", orderID, state.Status)
		}

		if !e.gw.ExecuteAffecting(ctx, updateOrderStatusFrom, orderID,
			string(domain.OrderStatusReturned), string(state.Status)) {
			return stepFailed("set order %d returned", orderID)
		}
		if err = e.restoreOrderStock(ctx, orderID); err != nil {
			return err
		}
		return e.audit(ctx, domain.EntityOrder, orderID, domain.AuditUpdate, customerID, DetailReturned)
	})
}
