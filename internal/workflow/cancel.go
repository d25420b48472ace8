package workflow

import (
	"context"

	"github.com/fsdevblog/orderflow/internal/domain"
)

// CancelByAdmin отменяет заказ в статусе pending или completed.
//
// Алгоритм работы:
//  1. Переводит заказ в canceled, заказ должен существовать и не быть canceled или returned.
//  2. Возвращает на склад количество по каждой позиции заказа.
//  3. Пишет запись аудита от имени actorID.
func (e *Engine) CancelByAdmin(ctx context.Context, orderID, actorID int64) error {
	return e.run(ctx, "cancel_by_admin", func(ctx context.Context) error {
		if !e.gw.ExecuteAffecting(ctx, cancelOrderByAdmin, orderID) {
			return stepFailed("set order %d canceled: missing or already final", orderID)
		}
		if err := e.restoreOrderStock(ctx, orderID); err != nil {
			return err
		}
		return e.audit(ctx, domain.EntityOrder, orderID, domain.AuditUpdate, actorID, DetailCanceledByAdmin)
	})
}

// CancelPending отменяет заказ в статусе pending. Для клиента ownerID указывает на него самого
// и заказ должен ему принадлежать, менеджер передает nil.
//
// Предусловия проверяются до открытия транзакции: при их нарушении в хранилище ничего не пишется.
func (e *Engine) CancelPending(ctx context.Context, orderID, actorID int64, ownerID *int64) error {
	state, err := e.readOrder(ctx, selectOrderState, orderID)
	if err != nil {
		return err
	}
	if ownerID != nil && state.UserID != *ownerID {
		return preconditionFailed("order %d does not belong to user %d", orderID, *ownerID)
	}
	if state.Status != domain.OrderStatusPending {
		return preconditionFailed("order %d is `%s`, only pending orders can be canceled", orderID, state.Status)
	}

	details := DetailCanceledByManager
	if ownerID != nil {
		details = DetailCanceledByOwner
	}

	return e.run(ctx, "cancel_pending", func(ctx context.Context) error {
		if !e.gw.ExecuteAffecting(ctx, updateOrderStatusFrom, orderID,
			string(domain.OrderStatusCanceled), string(domain.OrderStatusPending)) {
			return stepFailed("set order %d canceled", orderID)
		}
		if err := e.restoreOrderStock(ctx, orderID); err != nil {
			return err
		}
		return e.audit(ctx, domain.EntityOrder, orderID, domain.AuditUpdate, actorID, details)
	})
}
