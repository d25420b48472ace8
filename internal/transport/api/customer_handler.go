package api

import (
	"net/http"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/payment"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	provider OperationsProvider
}

func NewCustomerHandler(provider OperationsProvider) *CustomerHandler {
	return &CustomerHandler{provider: provider}
}

type OrderLineParams struct {
	ProductID int64 `binding:"required,gt=0" json:"product_id"`
	Quantity  int   `binding:"required,gt=0" json:"quantity"`
}

type CreateOrderParams struct {
	Items []OrderLineParams `binding:"required,min=1,dive" json:"items"`
}

type PaymentParams struct {
	Method     string `binding:"required,payment_method" json:"method"`
	CardNumber string `binding:"omitempty,numeric,min=12,max=19" json:"card_number"`
	CardHolder string `binding:"omitempty,max=255"                json:"card_holder"`
	CardExpiry string `binding:"omitempty,max=7"                  json:"card_expiry"`
	WalletID   string `binding:"omitempty,max=255"                json:"wallet_id"`
	WalletType string `binding:"omitempty,max=255"                json:"wallet_type"`
	Phone      string `binding:"omitempty,e164"                   json:"phone"`
	Bank       string `binding:"omitempty,max=255"                json:"bank"`
}

func (p PaymentParams) details() payment.Details {
	return payment.Details{
		CardNumber: p.CardNumber,
		CardHolder: p.CardHolder,
		CardExpiry: p.CardExpiry,
		WalletID:   p.WalletID,
		WalletType: p.WalletType,
		Phone:      p.Phone,
		Bank:       p.Bank,
	}
}

// Products GET CustomerGroup + ProductsRoute.
func (h *CustomerHandler) Products(c *gin.Context) {
	ops, release := h.provider.Customer(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	t, err := ops.ListProducts(ctx)
	renderTable(c, t, err)
}

// Orders GET CustomerGroup + OrdersRoute.
func (h *CustomerHandler) Orders(c *gin.Context) {
	ops, release := h.provider.Customer(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	t, err := ops.OrderHistory(ctx)
	renderTable(c, t, err)
}

// CreateOrder POST CustomerGroup + OrdersRoute.
func (h *CustomerHandler) CreateOrder(c *gin.Context) {
	var params CreateOrderParams
	if !bindJSON(c, &params) {
		return
	}

	lines := make([]domain.OrderLine, len(params.Items))
	for i, item := range params.Items {
		lines[i] = domain.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	ops, release := h.provider.Customer(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	orderID, err := ops.CreateOrder(ctx, lines)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, OrderStatusResponse{OrderID: orderID, Status: domain.OrderStatusPending})
}

// AddItem POST CustomerGroup + OrderItemsRoute.
func (h *CustomerHandler) AddItem(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var params OrderLineParams
	if !bindJSON(c, &params) {
		return
	}

	ops, release := h.provider.Customer(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ops.AddToOrder(ctx, orderID, params.ProductID, params.Quantity); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusCreated)
}

// RemoveItem DELETE CustomerGroup + OrderItemRoute.
func (h *CustomerHandler) RemoveItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ops, release := h.provider.Customer(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ops.RemoveFromOrder(ctx, itemID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

// OrderStatus GET CustomerGroup + OrderStatusRoute.
func (h *CustomerHandler) OrderStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ops, release := h.provider.Customer(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	status, err := ops.ViewOrderStatus(ctx, orderID)
	renderStatus(c, orderID, status, err)
}

// Pay POST CustomerGroup + OrderPaymentRoute.
func (h *CustomerHandler) Pay(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var params PaymentParams
	if !bindJSON(c, &params) {
		return
	}

	ops, release := h.provider.Customer(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	transactionID, err := ops.MakePayment(ctx, orderID, payment.Method(params.Method), params.details())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_id":       orderID,
		"status":         domain.OrderStatusCompleted,
		"payment_status": domain.PaymentStatusPaid,
		"transaction_id": transactionID,
	})
}

// ReturnOrder POST CustomerGroup + OrderReturnRoute.
func (h *CustomerHandler) ReturnOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ops, release := h.provider.Customer(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	err := ops.ReturnOrder(ctx, orderID)
	renderStatus(c, orderID, domain.OrderStatusReturned, err)
}

// CancelOrder POST CustomerGroup + OrderCancelRoute.
func (h *CustomerHandler) CancelOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ops, release := h.provider.Customer(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	err := ops.CancelOrder(ctx, orderID)
	renderStatus(c, orderID, domain.OrderStatusCanceled, err)
}
