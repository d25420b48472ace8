package domain

import "github.com/shopspring/decimal"

// OrderLine строка нового заказа: товар и количество.
type OrderLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type ProductArgs struct {
	Name          string
	Price         decimal.Decimal
	StockQuantity int
}
