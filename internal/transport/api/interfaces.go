package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/operations"
	"github.com/fsdevblog/orderflow/internal/payment"
)

type AdminOperator interface {
	AddProduct(ctx context.Context, args domain.ProductArgs) error
	UpdateProduct(ctx context.Context, productID int64, args domain.ProductArgs) error
	DeleteProduct(ctx context.Context, productID int64) error
	ViewAllOrders(ctx context.Context) (operations.Table, error)
	ViewOrderStatus(ctx context.Context, orderID int64) (domain.OrderStatus, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
	OrderStatusHistory(ctx context.Context, orderID int64) (operations.Table, error)
	AuditLog(ctx context.Context) (operations.Table, error)
	AuditLogByUser(ctx context.Context, userID int64) (operations.Table, error)
	CancelOrder(ctx context.Context, orderID int64) error
	GenerateReport(ctx context.Context, w io.Writer) (int, error)
}

type ManagerOperator interface {
	PendingOrders(ctx context.Context) (operations.Table, error)
	ApproveOrder(ctx context.Context, orderID int64) error
	UpdateStock(ctx context.Context, productID int64, quantity int) error
	ViewOrderStatus(ctx context.Context, orderID int64) (domain.OrderStatus, error)
	CancelOrder(ctx context.Context, orderID int64) error
	ApprovedOrdersHistory(ctx context.Context) (operations.Table, error)
}

type CustomerOperator interface {
	ListProducts(ctx context.Context) (operations.Table, error)
	CreateOrder(ctx context.Context, lines []domain.OrderLine) (int64, error)
	AddToOrder(ctx context.Context, orderID, productID int64, quantity int) error
	RemoveFromOrder(ctx context.Context, orderItemID int64) error
	OrderHistory(ctx context.Context) (operations.Table, error)
	ViewOrderStatus(ctx context.Context, orderID int64) (domain.OrderStatus, error)
	MakePayment(ctx context.Context, orderID int64, method payment.Method, details payment.Details) (string, error)
	ReturnOrder(ctx context.Context, orderID int64) error
	CancelOrder(ctx context.Context, orderID int64) error
}

// OperationsProvider создает набор операций для пользователя на время одного запроса.
// Возвращаемую функцию release нужно вызвать по завершении запроса.
type OperationsProvider interface {
	Authenticate(ctx context.Context, email, password string) (domain.User, error)
	Admin(actor domain.User) (AdminOperator, func(context.Context))
	Manager(actor domain.User) (ManagerOperator, func(context.Context))
	Customer(actor domain.User) (CustomerOperator, func(context.Context))
}
