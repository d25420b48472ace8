package domain

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
	OrderStatusReturned  OrderStatus = "returned"
)

// orderTransitions допустимые переходы статусов заказа. Из canceled и returned переходов нет.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusCompleted, OrderStatusCanceled},
	OrderStatusCompleted: {OrderStatusReturned},
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCanceled, OrderStatusReturned:
		return true
	default:
		return false
	}
}

// CanTransitionTo проверяет, разрешен ли переход из текущего статуса в next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsFinal возвращает true для статусов, из которых нет переходов.
func (s OrderStatus) IsFinal() bool {
	return len(orderTransitions[s]) == 0
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleCustomer Role = "customer"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleCustomer
}

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

type EntityType string

const (
	EntityOrder     EntityType = "order"
	EntityOrderItem EntityType = "order_item"
	EntityProduct   EntityType = "product"
)

type AuditOperation string

const (
	AuditInsert AuditOperation = "insert"
	AuditUpdate AuditOperation = "update"
	AuditDelete AuditOperation = "delete"
)
