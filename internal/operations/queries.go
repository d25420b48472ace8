package operations

import "github.com/fsdevblog/orderflow/internal/workflow"

const (
	insertAuditEntry = `INSERT INTO audit_log (entity_type, entity_id, operation, performed_by, details)
VALUES ($1, $2, $3, $4, $5)`

	selectProductByName = `SELECT product_id FROM products WHERE lower(name) = lower($1)`
	insertProduct       = `INSERT INTO products (name, price, stock_quantity) VALUES ($1, $2::numeric, $3)`
	updateProduct       = `UPDATE products SET name = $2, price = $3::numeric, stock_quantity = $4 WHERE product_id = $1`
	deleteProduct       = `DELETE FROM products WHERE product_id = $1`
	updateStock         = `UPDATE products SET stock_quantity = $2 WHERE product_id = $1`

	selectProducts = `SELECT product_id, name, price, stock_quantity FROM products ORDER BY product_id`

	selectAllOrders = `SELECT o.order_id, u.name AS customer, o.status, o.total_price, o.order_date,
       COUNT(oi.order_item_id) AS items_count
FROM orders o
JOIN users u ON o.user_id = u.user_id
LEFT JOIN order_items oi ON o.order_id = oi.order_id
GROUP BY o.order_id, u.name, o.status, o.total_price, o.order_date
ORDER BY o.order_date DESC`

	selectPendingOrders = `SELECT o.order_id, u.name AS customer, o.total_price, o.order_date,
       COUNT(oi.order_item_id) AS items_count
FROM orders o
JOIN users u ON o.user_id = u.user_id
LEFT JOIN order_items oi ON o.order_id = oi.order_id
WHERE o.status = 'pending'
GROUP BY o.order_id, u.name, o.total_price, o.order_date
ORDER BY o.order_date`

	selectApprovedByManager = `SELECT o.order_id, u.name AS customer, o.total_price, o.order_date, o.status
FROM orders o
JOIN users u ON o.user_id = u.user_id
WHERE o.status = 'completed'
  AND EXISTS (SELECT 1 FROM audit_log a
              WHERE a.entity_type = 'order' AND a.entity_id = o.order_id
                AND a.performed_by = $1 AND a.details = $2)
ORDER BY o.order_date DESC`

	selectCustomerOrders = `SELECT o.order_id, o.status, o.total_price, o.order_date,
       COUNT(oi.order_item_id) AS items_count
FROM orders o
LEFT JOIN order_items oi ON o.order_id = oi.order_id
WHERE o.user_id = $1
GROUP BY o.order_id, o.status, o.total_price, o.order_date
ORDER BY o.order_date DESC`

	selectAuditLog = `SELECT a.log_id, a.entity_type, a.entity_id, a.operation, u.name AS performed_by,
       a.performed_at, a.details
FROM audit_log a
LEFT JOIN users u ON a.performed_by = u.user_id
ORDER BY a.performed_at DESC, a.log_id DESC
LIMIT 100`

	selectReport = `SELECT o.order_id, u.name AS customer, o.status, h.new_status, h.changed_at,
       a.operation, a.performed_at, a.details
FROM orders o
LEFT JOIN users u ON o.user_id = u.user_id
LEFT JOIN order_status_history h ON o.order_id = h.order_id
LEFT JOIN audit_log a ON o.order_id = a.entity_id AND a.entity_type = 'order'
WHERE o.order_date >= CURRENT_DATE - INTERVAL '30 days'
ORDER BY o.order_id, h.changed_at`

	selectOrderStatus = `SELECT status FROM orders WHERE order_id = $1`
	selectOrderOwner  = `SELECT user_id FROM orders WHERE order_id = $1`

	callGetOrderStatus        = `SELECT getOrderStatus($1)`
	callGetOrderStatusHistory = `SELECT * FROM getOrderStatusHistory($1)`
	callGetAuditLogByUser     = `SELECT * FROM getAuditLogByUser($1)`

	selectFirstUserByRole = `SELECT user_id, name, email, role, loyalty_level FROM users
WHERE role = $1 ORDER BY user_id LIMIT 1`
	selectUserByRoleAndEmail = `SELECT user_id, name, email, role, loyalty_level FROM users
WHERE role = $1 AND email = $2`
	selectUserCredentials = `SELECT user_id, name, email, role, loyalty_level, password_hash FROM users
WHERE email = $1`
	updateUserPassword = `UPDATE users SET password_hash = $2 WHERE email = $1`
)

// Колонки табличных результатов в порядке выборки.
var (
	ProductColumns       = []string{"product_id", "name", "price", "stock_quantity"}
	AllOrdersColumns     = []string{"order_id", "customer", "status", "total_price", "order_date", "items_count"}
	PendingOrdersColumns = []string{"order_id", "customer", "total_price", "order_date", "items_count"}
	ApprovedColumns      = []string{"order_id", "customer", "total_price", "order_date", "status"}
	OrderHistoryColumns  = []string{"order_id", "status", "total_price", "order_date", "items_count"}
	StatusHistoryColumns = []string{"old_status", "new_status", "changed_at", "changed_by"}
	UserAuditLogColumns  = []string{"log_id", "entity_type", "entity_id", "operation", "performed_at", "details"}

	AuditLogColumns = []string{
		"log_id", "entity_type", "entity_id", "operation", "performed_by", "performed_at", "details",
	}
	ReportColumns = []string{
		"order_id", "customer", "status", "new_status", "changed_at", "operation", "performed_at", "details",
	}
)

const approvedDetail = workflow.DetailApprovedByManager
