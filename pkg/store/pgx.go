package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// pgxDBTX адаптирует pool/tx из pgx к DBTX. Все запросы идут через simple protocol, поэтому значения
// колонок приходят в текстовом виде, а аргументы экранируются драйвером.
type pgxDBTX struct {
	q pgxQuerier
}

func (d pgxDBTX) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return d.q.Exec(ctx, sql, simpleProtocol(args)...) //nolint:wrapcheck
}

func (d pgxDBTX) Query(ctx context.Context, sql string, args ...any) (ResultSet, error) {
	rows, err := d.q.Query(ctx, sql, simpleProtocol(args)...)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return rows, nil
}

type pgxTx struct {
	pgxDBTX
	tx pgx.Tx
}

func (t pgxTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx) //nolint:wrapcheck
}

func (t pgxTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx) //nolint:wrapcheck
}

type PoolConn struct {
	pgxDBTX
	pool *pgxpool.Pool
}

// NewPoolConn оборачивает пул соединений. Пул потокобезопасен и может использоваться
// несколькими шлюзами одновременно.
func NewPoolConn(pool *pgxpool.Pool) *PoolConn {
	return &PoolConn{
		pgxDBTX: pgxDBTX{q: pool},
		pool:    pool,
	}
}

func (p *PoolConn) Begin(ctx context.Context) (Tx, error) {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return pgxTx{pgxDBTX: pgxDBTX{q: tx}, tx: tx}, nil
}

func simpleProtocol(args []any) []any {
	return append([]any{pgx.QueryExecModeSimpleProtocol}, args...)
}
