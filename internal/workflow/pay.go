package workflow

import (
	"context"
	"fmt"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/payment"
	"github.com/shopspring/decimal"
)

// Pay оплачивает заказ клиента выбранной стратегией и возвращает идентификатор транзакции.
//
// Сумма платежа берется из заблокированной строки заказа, поэтому совпадает с итоговой суммой
// на момент оплаты. При отказе стратегии транзакция откатывается, заказ остается pending.
func (e *Engine) Pay(ctx context.Context, orderID, customerID int64, strategy payment.Strategy) (string, error) {
	if strategy == nil {
		return "", preconditionFailed("no payment strategy for order %d", orderID)
	}

	var transactionID string
	err := e.run(ctx, "pay", func(ctx context.Context) error {
		state, err := e.readOrder(ctx, selectOrderForUpdate, orderID)
		if err != nil {
			return err
		}
		if state.UserID != customerID {
			return preconditionFailed("order %d does not belong to user %d", orderID, customerID)
		}
		if state.Status != domain.OrderStatusPending {
			return preconditionFailed("order %d is `%s`, only pending orders can be paid", orderID, state.Status)
		}

		total, err := decimal.NewFromString(state.TotalPrice)
		if err != nil {
			return stepFailed("parse total of order %d: %s", orderID, err)
		}

		p := payment.NewPayment(total, strategy, e.logger)
		if !p.Process(ctx) {
			return fmt.Errorf("%w: order %d via %s", domain.ErrPaymentDeclined, orderID, strategy.Name())
		}

		if !e.gw.ExecuteAffecting(ctx, markOrderPaid, orderID, string(strategy.Method())) {
			return stepFailed("mark order %d paid", orderID)
		}

		details := fmt.Sprintf("order paid: %s, amount %s, transaction %s",
			strategy.Name(), total.StringFixed(2), p.TransactionID())
		if err = e.audit(ctx, domain.EntityOrder, orderID, domain.AuditUpdate, customerID, details); err != nil {
			return err
		}

		transactionID = p.TransactionID()
		return nil
	})
	if err != nil {
		return "", err
	}
	return transactionID, nil
}
