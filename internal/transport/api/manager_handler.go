package api

import (
	"net/http"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/gin-gonic/gin"
)

type ManagerHandler struct {
	provider OperationsProvider
}

func NewManagerHandler(provider OperationsProvider) *ManagerHandler {
	return &ManagerHandler{provider: provider}
}

type StockParams struct {
	Quantity *int `binding:"required,min=0" json:"quantity"`
}

// PendingOrders GET ManagerGroup + PendingOrdersRoute.
func (h *ManagerHandler) PendingOrders(c *gin.Context) {
	ops, release := h.provider.Manager(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	t, err := ops.PendingOrders(ctx)
	renderTable(c, t, err)
}

// ApprovedOrders GET ManagerGroup + ApprovedOrdersRoute.
func (h *ManagerHandler) ApprovedOrders(c *gin.Context) {
	ops, release := h.provider.Manager(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	t, err := ops.ApprovedOrdersHistory(ctx)
	renderTable(c, t, err)
}

// ApproveOrder POST ManagerGroup + OrderApproveRoute.
func (h *ManagerHandler) ApproveOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ops, release := h.provider.Manager(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	err := ops.ApproveOrder(ctx, orderID)
	renderStatus(c, orderID, domain.OrderStatusCompleted, err)
}

// CancelOrder POST ManagerGroup + OrderCancelRoute.
func (h *ManagerHandler) CancelOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ops, release := h.provider.Manager(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	err := ops.CancelOrder(ctx, orderID)
	renderStatus(c, orderID, domain.OrderStatusCanceled, err)
}

// OrderStatus GET ManagerGroup + OrderStatusRoute.
func (h *ManagerHandler) OrderStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ops, release := h.provider.Manager(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	status, err := ops.ViewOrderStatus(ctx, orderID)
	renderStatus(c, orderID, status, err)
}

// UpdateStock PUT ManagerGroup + ProductStockRoute.
func (h *ManagerHandler) UpdateStock(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var params StockParams
	if !bindJSON(c, &params) {
		return
	}

	ops, release := h.provider.Manager(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ops.UpdateStock(ctx, productID, *params.Quantity); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": productID, "stock_quantity": *params.Quantity})
}
