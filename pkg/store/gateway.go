package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

// Gateway единственная точка доступа к хранилищу: запросы, одиночные команды и управление транзакцией.
//
// Шлюз хранит состояние открытой транзакции и не потокобезопасен. Конкурентные вызывающие должны
// использовать отдельный Gateway поверх общего пула (см. NewPoolConn) либо сериализовать доступ сами.
type Gateway struct {
	conn Conn
	tx   Tx
	l    *logrus.Entry
}

func NewGateway(conn Conn, l *logrus.Logger) *Gateway {
	return &Gateway{
		conn: conn,
		l: l.WithFields(logrus.Fields{
			"component": "store",
			"module":    "gateway",
		}),
	}
}

// executor пока транзакция открыта, все запросы выполняются внутри нее.
func (g *Gateway) executor() DBTX {
	if g.tx != nil {
		return g.tx
	}
	return g.conn
}

// Query выполняет запрос на чтение. Ошибка логируется, вызывающему возвращается пустой результат.
func (g *Gateway) Query(ctx context.Context, sql string, args ...any) Rows {
	result := make(Rows, 0)

	rs, err := g.executor().Query(ctx, sql, args...)
	if err != nil {
		g.logStatementError(err, sql, "query failed")
		return result
	}
	defer rs.Close()

	for rs.Next() {
		raw := rs.RawValues()
		row := make(Row, len(raw))
		for i, value := range raw {
			row[i] = string(value)
		}
		result = append(result, row)
	}

	if rowsErr := rs.Err(); rowsErr != nil {
		g.l.WithError(rowsErr).WithField("sql", sql).Error("reading query result failed")
		return make(Rows, 0)
	}
	return result
}

// Execute выполняет одиночную команду. Без открытой транзакции команда фиксируется сразу.
func (g *Gateway) Execute(ctx context.Context, sql string, args ...any) bool {
	_, ok := g.exec(ctx, sql, args...)
	return ok
}

// ExecuteAffecting как Execute, но дополнительно считает неудачей команду, не затронувшую ни одной строки.
func (g *Gateway) ExecuteAffecting(ctx context.Context, sql string, args ...any) bool {
	affected, ok := g.exec(ctx, sql, args...)
	if !ok {
		return false
	}
	if affected == 0 {
		g.l.WithField("sql", sql).Warn("statement affected no rows")
		return false
	}
	return true
}

func (g *Gateway) exec(ctx context.Context, sql string, args ...any) (int64, bool) {
	tag, err := g.executor().Exec(ctx, sql, args...)
	if err != nil {
		g.logStatementError(err, sql, "execute failed")
		return 0, false
	}
	return tag.RowsAffected(), true
}

// Begin открывает транзакцию. Если транзакция уже открыта, ничего не делает. Возвращает false,
// только если открыть транзакцию не удалось.
func (g *Gateway) Begin(ctx context.Context) bool {
	if g.tx != nil {
		g.l.Debug("transaction already open")
		return true
	}
	tx, err := g.conn.Begin(ctx)
	if err != nil {
		g.l.WithError(err).Error("begin transaction failed")
		return false
	}
	g.tx = tx
	g.l.Debug("transaction started")
	return true
}

// Commit фиксирует открытую транзакцию. Без открытой транзакции возвращает false.
func (g *Gateway) Commit(ctx context.Context) bool {
	if g.tx == nil {
		return false
	}
	tx := g.tx
	g.tx = nil

	if err := tx.Commit(ctx); err != nil {
		g.l.WithError(err).Error("commit failed")
		return false
	}
	g.l.Debug("transaction committed")
	return true
}

// Rollback откатывает открытую транзакцию. Без открытой транзакции возвращает false.
func (g *Gateway) Rollback(ctx context.Context) bool {
	if g.tx == nil {
		return false
	}
	tx := g.tx
	g.tx = nil

	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		g.l.WithError(err).Error("rollback failed")
		return false
	}
	g.l.Debug("transaction rolled back")
	return true
}

func (g *Gateway) InTransaction() bool {
	return g.tx != nil
}

// Close откатывает незавершенную транзакцию. Пул соединений шлюзу не принадлежит и не закрывается.
func (g *Gateway) Close(ctx context.Context) {
	if g.tx != nil {
		g.l.Warn("closing gateway with open transaction, rolling back")
		g.Rollback(ctx)
	}
}
