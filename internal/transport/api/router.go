package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 5 * time.Second
)

const (
	RouteGroup    = "/api"
	SessionRoute  = "/session"
	AdminGroup    = "/admin"
	ManagerGroup  = "/manager"
	CustomerGroup = "/customer"

	ProductsRoute       = "/products"
	ProductRoute        = "/products/:id"
	ProductStockRoute   = "/products/:id/stock"
	OrdersRoute         = "/orders"
	PendingOrdersRoute  = "/orders/pending"
	ApprovedOrdersRoute = "/orders/approved"
	OrderStatusRoute    = "/orders/:id/status"
	OrderHistoryRoute   = "/orders/:id/history"
	OrderCancelRoute    = "/orders/:id/cancel"
	OrderApproveRoute   = "/orders/:id/approve"
	OrderReturnRoute    = "/orders/:id/return"
	OrderPaymentRoute   = "/orders/:id/payment"
	OrderItemsRoute     = "/orders/:id/items"
	OrderItemRoute      = "/items/:id"
	AuditRoute          = "/audit"
	UserAuditRoute      = "/audit/users/:id"
	ReportRoute         = "/report"
)

type RouterArgs struct {
	Logger       *logrus.Logger
	Provider     OperationsProvider
	JWTSecretKey []byte
	TokenTTL     time.Duration
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	sessionHandler := NewSessionHandler(args.Provider, args.JWTSecretKey, args.TokenTTL)
	adminHandler := NewAdminHandler(args.Provider)
	managerHandler := NewManagerHandler(args.Provider)
	customerHandler := NewCustomerHandler(args.Provider)

	api := r.Group(RouteGroup)
	api.POST(SessionRoute, sessionHandler.Create)

	// ниже все группы требуют авторизованного пользователя с соответствующей ролью.
	admin := api.Group(AdminGroup,
		middlewares.AuthRequired(args.JWTSecretKey), middlewares.RequireRole(domain.RoleAdmin))
	admin.POST(ProductsRoute, adminHandler.AddProduct)
	admin.PUT(ProductRoute, adminHandler.UpdateProduct)
	admin.DELETE(ProductRoute, adminHandler.DeleteProduct)
	admin.GET(OrdersRoute, adminHandler.Orders)
	admin.GET(OrderStatusRoute, adminHandler.OrderStatus)
	admin.PUT(OrderStatusRoute, adminHandler.UpdateOrderStatus)
	admin.GET(OrderHistoryRoute, adminHandler.OrderHistory)
	admin.POST(OrderCancelRoute, adminHandler.CancelOrder)
	admin.GET(AuditRoute, adminHandler.AuditLog)
	admin.GET(UserAuditRoute, adminHandler.UserAuditLog)
	admin.GET(ReportRoute, adminHandler.Report)

	manager := api.Group(ManagerGroup,
		middlewares.AuthRequired(args.JWTSecretKey), middlewares.RequireRole(domain.RoleManager))
	manager.GET(PendingOrdersRoute, managerHandler.PendingOrders)
	manager.GET(ApprovedOrdersRoute, managerHandler.ApprovedOrders)
	manager.POST(OrderApproveRoute, managerHandler.ApproveOrder)
	manager.POST(OrderCancelRoute, managerHandler.CancelOrder)
	manager.GET(OrderStatusRoute, managerHandler.OrderStatus)
	manager.PUT(ProductStockRoute, managerHandler.UpdateStock)

	customer := api.Group(CustomerGroup,
		middlewares.AuthRequired(args.JWTSecretKey), middlewares.RequireRole(domain.RoleCustomer))
	customer.GET(ProductsRoute, customerHandler.Products)
	customer.GET(OrdersRoute, customerHandler.Orders)
	customer.POST(OrdersRoute, customerHandler.CreateOrder)
	customer.GET(OrderStatusRoute, customerHandler.OrderStatus)
	customer.POST(OrderItemsRoute, customerHandler.AddItem)
	customer.DELETE(OrderItemRoute, customerHandler.RemoveItem)
	customer.POST(OrderPaymentRoute, customerHandler.Pay)
	customer.POST(OrderReturnRoute, customerHandler.ReturnOrder)
	customer.POST(OrderCancelRoute, customerHandler.CancelOrder)

	return r, nil
}
