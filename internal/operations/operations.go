package operations

import (
	"context"
	"fmt"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/workflow"
	"github.com/fsdevblog/orderflow/pkg/store"
	"github.com/sirupsen/logrus"
)

// Table табличный результат: названия колонок и строки в текстовом виде.
type Table struct {
	Columns []string
	Rows    store.Rows
}

// base общее для всех наборов операций: пользователь, от имени которого они выполняются,
// шлюз и движок сценариев поверх того же шлюза.
type base struct {
	actor    domain.User
	required domain.Role
	gw       workflow.Gateway
	engine   *workflow.Engine
	l        *logrus.Entry
}

func newBase(actor domain.User, required domain.Role, gw workflow.Gateway, logger *logrus.Logger) base {
	return base{
		actor:    actor,
		required: required,
		gw:       gw,
		engine:   workflow.NewEngine(gw, logger),
		l: logger.WithFields(logrus.Fields{
			"component": "operations",
			"module":    string(required),
			"actor_id":  actor.ID,
		}),
	}
}

// authorize проверяется перед каждой операцией. При несовпадении роли хранилище не трогается.
func (b *base) authorize() error {
	if !b.actor.HasRole(b.required) {
		b.l.WithField("actor_role", b.actor.Role).Warn("operation forbidden")
		return domain.NewForbiddenError(b.actor.Role, b.required)
	}
	return nil
}

func (b *base) Actor() domain.User {
	return b.actor
}

func (b *base) table(ctx context.Context, columns []string, sql string, args ...any) Table {
	return Table{Columns: columns, Rows: b.gw.Query(ctx, sql, args...)}
}

// auditBestEffort запись аудита для одиночных команд вне транзакции. Ошибка записи только логируется:
// основная команда к этому моменту уже зафиксирована.
func (b *base) auditBestEffort(
	ctx context.Context,
	entity domain.EntityType,
	entityID *int64,
	op domain.AuditOperation,
	details string,
) {
	var id any
	if entityID != nil {
		id = *entityID
	}
	if !b.gw.Execute(ctx, insertAuditEntry, string(entity), id, string(op), b.actor.ID, details) {
		b.l.WithField("entity", entity).Warn("audit entry was not written")
	}
}

func statementFailed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrStatementFailed, fmt.Sprintf(format, args...))
}

func (b *base) scalarStatus(ctx context.Context, sql string, orderID int64) (domain.OrderStatus, error) {
	status, ok := b.gw.Query(ctx, sql, orderID).Scalar()
	if !ok || status == "" {
		return "", fmt.Errorf("%w: order %d", domain.ErrRecordNotFound, orderID)
	}
	return domain.OrderStatus(status), nil
}
