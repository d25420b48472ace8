package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AdminHandler struct {
	provider OperationsProvider
}

func NewAdminHandler(provider OperationsProvider) *AdminHandler {
	return &AdminHandler{provider: provider}
}

type ProductParams struct {
	Name          string          `binding:"required,min=1,max=255" json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `binding:"min=0"                  json:"stock_quantity"`
}

func (p ProductParams) toArgs() domain.ProductArgs {
	return domain.ProductArgs{Name: p.Name, Price: p.Price, StockQuantity: p.StockQuantity}
}

type OrderStatusParams struct {
	Status string `binding:"required,order_status" json:"status"`
}

// AddProduct POST AdminGroup + ProductsRoute.
func (h *AdminHandler) AddProduct(c *gin.Context) {
	var params ProductParams
	if !bindJSON(c, &params) {
		return
	}

	ops, release := h.provider.Admin(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ops.AddProduct(ctx, params.toArgs()); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusCreated)
}

// UpdateProduct PUT AdminGroup + ProductRoute.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var params ProductParams
	if !bindJSON(c, &params) {
		return
	}

	ops, release := h.provider.Admin(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ops.UpdateProduct(ctx, productID, params.toArgs()); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

// DeleteProduct DELETE AdminGroup + ProductRoute.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ops, release := h.provider.Admin(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ops.DeleteProduct(ctx, productID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

// Orders GET AdminGroup + OrdersRoute.
func (h *AdminHandler) Orders(c *gin.Context) {
	ops, release := h.provider.Admin(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	t, err := ops.ViewAllOrders(ctx)
	renderTable(c, t, err)
}

// OrderStatus GET AdminGroup + OrderStatusRoute.
func (h *AdminHandler) OrderStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ops, release := h.provider.Admin(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	status, err := ops.ViewOrderStatus(ctx, orderID)
	renderStatus(c, orderID, status, err)
}

// UpdateOrderStatus PUT AdminGroup + OrderStatusRoute.
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var params OrderStatusParams
	if !bindJSON(c, &params) {
		return
	}

	ops, release := h.provider.Admin(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	status := domain.OrderStatus(params.Status)
	err := ops.UpdateOrderStatus(ctx, orderID, status)
	renderStatus(c, orderID, status, err)
}

// OrderHistory GET AdminGroup + OrderHistoryRoute.
func (h *AdminHandler) OrderHistory(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ops, release := h.provider.Admin(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	t, err := ops.OrderStatusHistory(ctx, orderID)
	renderTable(c, t, err)
}

// CancelOrder POST AdminGroup + OrderCancelRoute.
func (h *AdminHandler) CancelOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ops, release := h.provider.Admin(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	err := ops.CancelOrder(ctx, orderID)
	renderStatus(c, orderID, domain.OrderStatusCanceled, err)
}

// AuditLog GET AdminGroup + AuditRoute.
func (h *AdminHandler) AuditLog(c *gin.Context) {
	ops, release := h.provider.Admin(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	t, err := ops.AuditLog(ctx)
	renderTable(c, t, err)
}

// UserAuditLog GET AdminGroup + UserAuditRoute.
func (h *AdminHandler) UserAuditLog(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ops, release := h.provider.Admin(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	t, err := ops.AuditLogByUser(ctx, userID)
	renderTable(c, t, err)
}

// Report GET AdminGroup + ReportRoute. Отдает CSV отчет за последние 30 дней.
func (h *AdminHandler) Report(c *gin.Context) {
	ops, release := h.provider.Admin(getActorFromContext(c))
	defer release(releaseContext(c))
	ctx, cancel := requestContext(c)
	defer cancel()

	var buf bytes.Buffer
	if _, err := ops.GenerateReport(ctx, &buf); err != nil {
		abortWithDomainError(c, err)
		return
	}

	filename := fmt.Sprintf("audit_report_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
