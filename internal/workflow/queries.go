package workflow

const (
	selectOrderForUpdate = `SELECT user_id, status, total_price FROM orders WHERE order_id = $1 FOR UPDATE`
	selectOrderState     = `SELECT user_id, status FROM orders WHERE order_id = $1`

	updateOrderStatus = `UPDATE orders SET status = $2 WHERE order_id = $1`
	// финальные статусы не трогаем, иначе склад восстановится повторно.
	cancelOrderByAdmin = `UPDATE orders SET status = 'canceled'
WHERE order_id = $1 AND status NOT IN ('canceled', 'returned')`
	// guarded: не затронет строку, если статус успели поменять после проверки.
	updateOrderStatusFrom = `UPDATE orders SET status = $2 WHERE order_id = $1 AND status = $3`

	markOrderPaid = `UPDATE orders
SET status = 'completed', payment_method = $2, payment_status = 'paid'
WHERE order_id = $1 AND status = 'pending'`

	recalculateOrderTotal = `UPDATE orders
SET total_price = COALESCE((SELECT SUM(quantity * price) FROM order_items WHERE order_id = $1), 0)
WHERE order_id = $1`

	selectOrderItems = `SELECT product_id, quantity FROM order_items WHERE order_id = $1 ORDER BY order_item_id`

	selectOwnedPendingItem = `SELECT oi.order_id, oi.product_id, oi.quantity
FROM order_items oi
JOIN orders o ON o.order_id = oi.order_id
WHERE oi.order_item_id = $1 AND o.user_id = $2 AND o.status = 'pending'
FOR UPDATE OF o`

	insertOrderItem = `INSERT INTO order_items (order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4::numeric)`
	deleteOrderItem = `DELETE FROM order_items WHERE order_item_id = $1`

	selectProductPrice = `SELECT price FROM products WHERE product_id = $1`
	restoreStock       = `UPDATE products SET stock_quantity = stock_quantity + $2 WHERE product_id = $1`
	reserveStock       = `UPDATE products SET stock_quantity = stock_quantity - $2 WHERE product_id = $1 AND stock_quantity >= $2`

	insertAuditEntry = `INSERT INTO audit_log (entity_type, entity_id, operation, performed_by, details)
VALUES ($1, $2, $3, $4, $5)`

	callCanReturnOrder    = `SELECT canReturnOrder($1)`
	callCreateOrder       = `CALL createOrder($1, $2::jsonb, NULL, NULL)`
	callUpdateOrderStatus = `CALL updateOrderStatus($1, $2, $3, NULL)`
)

// Тексты записей аудита. DetailApprovedByManager используется в выборке истории утверждений.
const (
	DetailCanceledByAdmin   = "order canceled by admin"
	DetailCanceledByManager = "order canceled by manager"
	DetailCanceledByOwner   = "order canceled by customer"
	DetailApprovedByManager = "order approved by manager"
	DetailReturned          = "order returned by customer"
)
