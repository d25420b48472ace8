package workflow

import (
	"context"

	"github.com/fsdevblog/orderflow/pkg/store"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// Gateway доступ к хранилищу, которым пользуются сценарии. Реализуется *store.Gateway.
type Gateway interface {
	store.Transactor
	Query(ctx context.Context, sql string, args ...any) store.Rows
	Execute(ctx context.Context, sql string, args ...any) bool
	ExecuteAffecting(ctx context.Context, sql string, args ...any) bool
}
