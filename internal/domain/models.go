package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int64
	Name         string
	Email        string
	Role         Role
	LoyaltyLevel int
}

// HasRole проверка прав: роль пользователя должна совпадать с требуемой.
func (u User) HasRole(required Role) bool {
	return u.Role == required
}

type Product struct {
	ID            int64
	Name          string
	Price         decimal.Decimal
	StockQuantity int
}

type OrderItem struct {
	ID          int64
	ProductID   int64
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

func (i OrderItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID            int64
	UserID        int64
	Status        OrderStatus
	TotalPrice    decimal.Decimal
	OrderDate     time.Time
	PaymentMethod string
	PaymentStatus PaymentStatus
	Items         []OrderItem
}

// AddItem добавляет позицию в заказ и пересчитывает итоговую сумму.
func (o *Order) AddItem(item OrderItem) {
	o.Items = append(o.Items, item)
	o.RecalculateTotal()
}

// RemoveItem удаляет первую позицию с указанным productID. Возвращает false, если такой позиции нет.
func (o *Order) RemoveItem(productID int64) bool {
	for i, item := range o.Items {
		if item.ProductID == productID {
			// копия: исходный backing array может принадлежать вызывающему.
			o.Items = slices.Delete(slices.Clone(o.Items), i, i+1)
			o.RecalculateTotal()
			return true
		}
	}
	return false
}

// CalculateTotal сумма quantity*price по всем позициям заказа.
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Total())
	}
	return total
}

func (o *Order) RecalculateTotal() {
	o.TotalPrice = o.CalculateTotal()
}

// FilterOrdersByStatus возвращает заказы с указанным статусом, сохраняя порядок.
func FilterOrdersByStatus(orders []Order, status OrderStatus) []Order {
	filtered := make([]Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == status {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

func CountOrdersByStatus(orders []Order, status OrderStatus) int {
	var count int
	for _, order := range orders {
		if order.Status == status {
			count++
		}
	}
	return count
}

// AuditEntry запись журнала аудита. Только добавляется, никогда не изменяется.
type AuditEntry struct {
	ID          int64
	EntityType  EntityType
	EntityID    *int64
	Operation   AuditOperation
	PerformedBy int64
	PerformedAt time.Time
	Details     string
}
