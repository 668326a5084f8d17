package entity

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStock is the live catalog state of a product.
type ProductStock struct {
	ID         uuid.UUID       `db:"id"`
	Name       string          `db:"name"`
	Slug       string          `db:"slug"`
	Price      decimal.Decimal `db:"price"`
	Stock      int             `db:"stock"`
	CategoryID uuid.NullUUID   `db:"category_id"`
	IsActive   bool            `db:"is_active"`
}

// StockValue is price multiplied by units on hand.
func (p *ProductStock) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// Category represents the categories table. The parent chain is not resolved.
type Category struct {
	ID       uuid.UUID     `db:"id"`
	Name     string        `db:"name"`
	Slug     string        `db:"slug"`
	ParentID uuid.NullUUID `db:"parent_id"`
}

// ItemSale is one order item of a delivered order joined with its product
// and the product's category.
type ItemSale struct {
	OrderItemID  uuid.UUID       `db:"order_item_id"`
	ProductID    uuid.UUID       `db:"product_id"`
	ProductName  string          `db:"product_name"`
	ProductSlug  string          `db:"product_slug"`
	ProductPrice decimal.Decimal `db:"product_price"`
	CategoryID   uuid.NullUUID   `db:"category_id"`
	CategoryName sql.NullString  `db:"category_name"`
	CategorySlug sql.NullString  `db:"category_slug"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
	Quantity     int             `db:"quantity"`
}

// Revenue is the snapshot unit price multiplied by quantity.
func (s *ItemSale) Revenue() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
