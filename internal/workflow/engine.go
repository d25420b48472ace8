package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/pkg/store"
	"github.com/sirupsen/logrus"
)

// Engine выполняет многошаговые сценарии жизненного цикла заказа. Каждый сценарий это одна
// транзакция шлюза: любой неудачный шаг откатывает все предыдущие, Commit вызывается только
// после успешного последнего шага.
//
// Engine не потокобезопасен, т.к. состояние транзакции хранится в шлюзе.
type Engine struct {
	gw     Gateway
	logger *logrus.Logger
	l      *logrus.Entry
}

func NewEngine(gw Gateway, logger *logrus.Logger) *Engine {
	return &Engine{
		gw:     gw,
		logger: logger,
		l: logger.WithFields(logrus.Fields{
			"component": "workflow",
			"module":    "engine",
		}),
	}
}

// run выполняет fn в транзакции и приводит ошибки управления транзакцией к ErrWorkflowAborted.
func (e *Engine) run(ctx context.Context, workflow string, fn func(ctx context.Context) error) error {
	l := e.l.WithField("workflow", workflow)

	err := store.InTransaction(ctx, e.gw, fn)
	if err == nil {
		l.Debug("workflow committed")
		return nil
	}

	if errors.Is(err, store.ErrBeginFailed) || errors.Is(err, store.ErrCommitFailed) {
		err = fmt.Errorf("%w: %w", domain.ErrWorkflowAborted, err)
	}
	l.WithError(err).Warn("workflow failed")
	return err
}

func stepFailed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrWorkflowAborted, fmt.Sprintf(format, args...))
}

func preconditionFailed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrPrecondition, fmt.Sprintf(format, args...))
}

func orderNotFound(orderID int64) error {
	return fmt.Errorf("%w: order %d", domain.ErrRecordNotFound, orderID)
}

// orderState текущее состояние заказа, прочитанное из хранилища.
type orderState struct {
	UserID     int64
	Status     domain.OrderStatus
	TotalPrice string
}

func (e *Engine) readOrder(ctx context.Context, sql string, orderID int64) (*orderState, error) {
	row, ok := e.gw.Query(ctx, sql, orderID).First()
	if !ok {
		return nil, orderNotFound(orderID)
	}
	userID, err := row.Int64(0)
	if err != nil {
		return nil, stepFailed("parse owner of order %d: %s", orderID, err)
	}
	return &orderState{
		UserID:     userID,
		Status:     domain.OrderStatus(row.String(1)),
		TotalPrice: row.String(2),
	}, nil
}

// restoreOrderStock возвращает на склад все позиции заказа.
//
// Если чтение позиций упало, postgres переводит транзакцию в aborted и следующий шаг сценария
// тоже упадет, поэтому пустой результат здесь не маскирует ошибку.
func (e *Engine) restoreOrderStock(ctx context.Context, orderID int64) error {
	for _, item := range e.gw.Query(ctx, selectOrderItems, orderID) {
		productID, err := item.Int64(0)
		if err != nil {
			return stepFailed("parse product id: %s", err)
		}
		quantity, err := item.Int(1)
		if err != nil {
			return stepFailed("parse quantity: %s", err)
		}
		if !e.gw.ExecuteAffecting(ctx, restoreStock, productID, quantity) {
			return stepFailed("restore stock of product %d", productID)
		}
	}
	return nil
}

func (e *Engine) audit(
	ctx context.Context,
	entity domain.EntityType,
	entityID int64,
	op domain.AuditOperation,
	actorID int64,
	details string,
) error {
	if !e.gw.Execute(ctx, insertAuditEntry, string(entity), entityID, string(op), actorID, details) {
		return stepFailed("write audit entry for %s %d", entity, entityID)
	}
	return nil
}
