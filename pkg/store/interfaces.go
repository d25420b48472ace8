package store

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
)

// ResultSet минимальное подмножество pgx.Rows, которое нужно шлюзу.
type ResultSet interface {
	Next() bool
	RawValues() [][]byte
	Err() error
	Close()
}

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (ResultSet, error)
}

type Tx interface {
	DBTX
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Conn interface {
	DBTX
	Begin(ctx context.Context) (Tx, error)
}

// Transactor управление единственной открытой транзакцией шлюза.
type Transactor interface {
	Begin(ctx context.Context) bool
	Commit(ctx context.Context) bool
	Rollback(ctx context.Context) bool
}
