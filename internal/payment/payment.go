package payment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Payment попытка оплаты заказа одной стратегией. Сумма фиксируется при создании.
//
// Повторный Process снова вызывает стратегию и генерирует новый идентификатор транзакции,
// защиты от двойного списания нет.
type Payment struct {
	amount        decimal.Decimal
	strategy      Strategy
	completed     bool
	transactionID string

	l *logrus.Entry
}

func NewPayment(amount decimal.Decimal, strategy Strategy, l *logrus.Logger) *Payment {
	return &Payment{
		amount:   amount,
		strategy: strategy,
		l: l.WithFields(logrus.Fields{
			"component": "payment",
			"module":    "orchestrator",
		}),
	}
}

// Process проводит оплату. Без стратегии сразу возвращает false, ничего не генерируя.
func (p *Payment) Process(ctx context.Context) bool {
	if p.strategy == nil {
		p.l.Warn("payment has no strategy bound")
		return false
	}

	p.transactionID = GenerateTransactionID()

	l := p.l.WithFields(logrus.Fields{
		"transaction_id": p.transactionID,
		"method":         p.strategy.Method(),
		"amount":         p.amount.StringFixed(2),
	})
	if d, ok := p.strategy.(describer); ok {
		l = l.WithFields(d.LogFields())
	}

	p.completed = p.strategy.Pay(ctx, p.amount)
	if !p.completed {
		l.Warn("payment declined")
		return false
	}

	l.Info("payment processed")
	return true
}

func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

func (p *Payment) Completed() bool {
	return p.completed
}

// TransactionID идентификатор последнего вызова Process. Пустой, пока Process не вызывался.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

func (p *Payment) StrategyName() string {
	if p.strategy == nil {
		return ""
	}
	return p.strategy.Name()
}

// GenerateTransactionID формат `TRX-<unix секунды>-<1000..9999>`. Уникальность не гарантируется.
func GenerateTransactionID() string {
	return fmt.Sprintf("TRX-%d-%d", time.Now().Unix(), 1000+rand.IntN(9000)) //nolint:gosec
}
