package workflow

import (
	"context"

	"github.com/fsdevblog/orderflow/internal/domain"
)

// Approve переводит заказ из pending в completed. Статус перечитывается внутри транзакции
// с блокировкой строки.
func (e *Engine) Approve(ctx context.Context, orderID, actorID int64) error {
	return e.run(ctx, "approve", func(ctx context.Context) error {
		state, err := e.readOrder(ctx, selectOrderForUpdate, orderID)
		if err != nil {
			return err
		}
		if state.Status != domain.OrderStatusPending {
			return preconditionFailed("order %d is `%s`, only pending orders can be approved", orderID, state.Status)
		}
		if !e.gw.ExecuteAffecting(ctx, updateOrderStatus, orderID, string(domain.OrderStatusCompleted)) {
			return stepFailed("set order %d completed", orderID)
		}
		return e.audit(ctx, domain.EntityOrder, orderID, domain.AuditUpdate, actorID, DetailApprovedByManager)
	})
}
