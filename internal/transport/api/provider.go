package api

import (
	"context"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/operations"
	"github.com/fsdevblog/orderflow/pkg/store"
	"github.com/sirupsen/logrus"
)

// StoreProvider на каждый запрос создает отдельный шлюз поверх общего пула соединений:
// шлюз хранит состояние транзакции и не может обслуживать параллельные запросы.
type StoreProvider struct {
	conn   store.Conn
	logger *logrus.Logger
}

func NewStoreProvider(conn store.Conn, logger *logrus.Logger) *StoreProvider {
	return &StoreProvider{conn: conn, logger: logger}
}

func (p *StoreProvider) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	gw := store.NewGateway(p.conn, p.logger)
	defer gw.Close(ctx)
	return operations.Authenticate(ctx, gw, email, password) //nolint:wrapcheck
}

func (p *StoreProvider) Admin(actor domain.User) (AdminOperator, func(context.Context)) {
	gw := store.NewGateway(p.conn, p.logger)
	return operations.NewAdmin(actor, gw, p.logger), gw.Close
}

func (p *StoreProvider) Manager(actor domain.User) (ManagerOperator, func(context.Context)) {
	gw := store.NewGateway(p.conn, p.logger)
	return operations.NewManager(actor, gw, p.logger), gw.Close
}

func (p *StoreProvider) Customer(actor domain.User) (CustomerOperator, func(context.Context)) {
	gw := store.NewGateway(p.conn, p.logger)
	return operations.NewCustomer(actor, gw, p.logger), gw.Close
}
