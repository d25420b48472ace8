package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/operations"
	"github.com/fsdevblog/orderflow/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// getActorFromContext пользователь текущего запроса. Id и роль устанавливаются в middlewares.AuthRequired.
// Если значений в контексте нет, вернется пустой пользователь, которому не разрешена ни одна операция.
func getActorFromContext(c *gin.Context) domain.User {
	var actor domain.User
	if id, ok := c.Get(middlewares.CurrentUserIDKey); ok {
		actor.ID, _ = id.(int64)
	}
	if role, ok := c.Get(middlewares.CurrentUserRoleKey); ok {
		actor.Role, _ = role.(domain.Role)
	}
	return actor
}

// pathID разбирает положительный id из параметра пути. При ошибке прерывает запрос с 400.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid "+name)).
			SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

// bindJSON ошибки валидации отдаются с 422, ошибки разбора тела с 400.
func bindJSON(c *gin.Context, obj any) bool {
	bindErr := c.ShouldBindJSON(obj)
	if bindErr == nil {
		return true
	}
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
		return false
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
	return false
}

// abortWithDomainError переводит ошибку операции в http статус.
func abortWithDomainError(c *gin.Context, err error) {
	status, errType := http.StatusInternalServerError, gin.ErrorTypePrivate

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, errType = http.StatusUnauthorized, gin.ErrorTypePublic
	case errors.Is(err, domain.ErrForbidden):
		status, errType = http.StatusForbidden, gin.ErrorTypePublic
	case errors.Is(err, domain.ErrRecordNotFound):
		status, errType = http.StatusNotFound, gin.ErrorTypePublic
	case errors.Is(err, domain.ErrInvalidArgument):
		status, errType = http.StatusUnprocessableEntity, gin.ErrorTypePublic
	case errors.Is(err, domain.ErrPrecondition):
		status, errType = http.StatusConflict, gin.ErrorTypePublic
	case errors.Is(err, domain.ErrDuplicateKey):
		status, errType = http.StatusConflict, gin.ErrorTypePublic
	case errors.Is(err, domain.ErrPaymentDeclined):
		status, errType = http.StatusPaymentRequired, gin.ErrorTypePublic
	case errors.Is(err, domain.ErrStatementFailed):
		status = http.StatusUnprocessableEntity
	}

	_ = c.AbortWithError(status, err).SetType(errType)
}

type TableResponse struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func newTableResponse(t operations.Table) TableResponse {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = row
	}
	return TableResponse{Columns: t.Columns, Rows: rows}
}

// renderTable пишет таблицу или ошибку операции.
func renderTable(c *gin.Context, t operations.Table, err error) {
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTableResponse(t))
}

type OrderStatusResponse struct {
	OrderID int64              `json:"order_id"`
	Status  domain.OrderStatus `json:"status"`
}

func renderStatus(c *gin.Context, orderID int64, status domain.OrderStatus, err error) {
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, OrderStatusResponse{OrderID: orderID, Status: status})
}

// requestContext контекст операции с таймаутом DefaultServiceTimeout.
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c, DefaultServiceTimeout)
}

// releaseContext контекст для освобождения шлюза: откат должен пройти даже после таймаута запроса.
func releaseContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c)
}
