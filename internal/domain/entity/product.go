package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. SKU es inmutable después de crearse
// y StockActual solo cambia a través de movimientos.
type Product struct {
	ID            int64
	SKU           string
	Barcode       string
	Name          string
	Description   string
	CategoryID    *int64
	CategoryName  string
	SupplierID    *int64
	SupplierName  string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	CurrentStock  int
	MinStock      int
	MaxStock      int
	Location      string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// BelowMinimum indica si el stock actual está en o por debajo del mínimo.
func (p *Product) BelowMinimum() bool {
	return p.CurrentStock <= p.MinStock
}
