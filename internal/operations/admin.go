package operations

import (
	"context"
	"fmt"
	"io"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/report"
	"github.com/fsdevblog/orderflow/internal/workflow"
	"github.com/sirupsen/logrus"
)

// Admin операции администратора: каталог товаров, все заказы, журнал аудита, отчеты.
type Admin struct {
	base
}

func NewAdmin(actor domain.User, gw workflow.Gateway, logger *logrus.Logger) *Admin {
	return &Admin{base: newBase(actor, domain.RoleAdmin, gw, logger)}
}

func validateProduct(args domain.ProductArgs) error {
	if args.Name == "" {
		return fmt.Errorf("%w: product name is required", domain.ErrInvalidArgument)
	}
	if args.Price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidArgument)
	}
	if args.StockQuantity < 0 {
		return fmt.Errorf("%w: stock quantity cannot be negative", domain.ErrInvalidArgument)
	}
	return nil
}

func (a *Admin) AddProduct(ctx context.Context, args domain.ProductArgs) error {
	if err := a.authorize(); err != nil {
		return err
	}
	if err := validateProduct(args); err != nil {
		return err
	}
	if _, exists := a.gw.Query(ctx, selectProductByName, args.Name).First(); exists {
		return fmt.Errorf("%w: product `%s` already exists", domain.ErrDuplicateKey, args.Name)
	}

	if !a.gw.Execute(ctx, insertProduct, args.Name, args.Price.String(), args.StockQuantity) {
		// параллельная вставка могла занять имя между проверкой и INSERT.
		if _, exists := a.gw.Query(ctx, selectProductByName, args.Name).First(); exists {
			return fmt.Errorf("%w: product `%s` already exists", domain.ErrDuplicateKey, args.Name)
		}
		return statementFailed("insert product `%s`", args.Name)
	}
	a.auditBestEffort(ctx, domain.EntityProduct, nil, domain.AuditInsert,
		fmt.Sprintf("product added: %s", args.Name))
	return nil
}

func (a *Admin) UpdateProduct(ctx context.Context, productID int64, args domain.ProductArgs) error {
	if err := a.authorize(); err != nil {
		return err
	}
	if err := validateProduct(args); err != nil {
		return err
	}

	if !a.gw.ExecuteAffecting(ctx, updateProduct, productID, args.Name, args.Price.String(), args.StockQuantity) {
		return statementFailed("update product %d", productID)
	}
	a.auditBestEffort(ctx, domain.EntityProduct, &productID, domain.AuditUpdate,
		fmt.Sprintf("product updated: %s, price %s, stock %d", args.Name, args.Price.StringFixed(2), args.StockQuantity))
	return nil
}

// DeleteProduct удаляет товар. Товар, на который ссылаются позиции заказов, удалить нельзя.
func (a *Admin) DeleteProduct(ctx context.Context, productID int64) error {
	if err := a.authorize(); err != nil {
		return err
	}

	if !a.gw.ExecuteAffecting(ctx, deleteProduct, productID) {
		return statementFailed("delete product %d", productID)
	}
	a.auditBestEffort(ctx, domain.EntityProduct, &productID, domain.AuditDelete, "product deleted")
	return nil
}

func (a *Admin) ViewAllOrders(ctx context.Context) (Table, error) {
	if err := a.authorize(); err != nil {
		return Table{}, err
	}
	return a.table(ctx, AllOrdersColumns, selectAllOrders), nil
}

func (a *Admin) ViewOrderStatus(ctx context.Context, orderID int64) (domain.OrderStatus, error) {
	if err := a.authorize(); err != nil {
		return "", err
	}
	return a.scalarStatus(ctx, callGetOrderStatus, orderID)
}

func (a *Admin) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	if err := a.authorize(); err != nil {
		return err
	}
	return a.engine.OverrideStatus(ctx, orderID, status, a.actor.ID) //nolint:wrapcheck
}

func (a *Admin) OrderStatusHistory(ctx context.Context, orderID int64) (Table, error) {
	if err := a.authorize(); err != nil {
		return Table{}, err
	}
	return a.table(ctx, StatusHistoryColumns, callGetOrderStatusHistory, orderID), nil
}

// AuditLog последние 100 записей журнала аудита.
func (a *Admin) AuditLog(ctx context.Context) (Table, error) {
	if err := a.authorize(); err != nil {
		return Table{}, err
	}
	return a.table(ctx, AuditLogColumns, selectAuditLog), nil
}

func (a *Admin) AuditLogByUser(ctx context.Context, userID int64) (Table, error) {
	if err := a.authorize(); err != nil {
		return Table{}, err
	}
	return a.table(ctx, UserAuditLogColumns, callGetAuditLogByUser, userID), nil
}

func (a *Admin) CancelOrder(ctx context.Context, orderID int64) error {
	if err := a.authorize(); err != nil {
		return err
	}
	return a.engine.CancelByAdmin(ctx, orderID, a.actor.ID) //nolint:wrapcheck
}

// ReportData строки отчета по заказам за последние 30 дней: история статусов и аудит.
func (a *Admin) ReportData(ctx context.Context) (Table, error) {
	if err := a.authorize(); err != nil {
		return Table{}, err
	}
	return a.table(ctx, ReportColumns, selectReport), nil
}

// GenerateReport пишет отчет в формате CSV и возвращает количество строк данных.
func (a *Admin) GenerateReport(ctx context.Context, w io.Writer) (int, error) {
	t, err := a.ReportData(ctx)
	if err != nil {
		return 0, err
	}
	if err = report.WriteCSV(w, t.Columns, t.Rows); err != nil {
		return 0, fmt.Errorf("generating report: %w", err)
	}
	a.l.WithField("rows", len(t.Rows)).Info("report generated")
	return len(t.Rows), nil
}
