package entity

import "time"

// Tipos y estados de alerta de stock.
const (
	AlertTypeCritical = "STOCK_CRITICO"
	AlertTypeMinimum  = "STOCK_MINIMO"

	AlertStatusPending  = "PENDIENTE"
	AlertStatusResolved = "RESUELTA"
)

// StockAlert es una alerta de stock bajo. Su único cambio de estado es
// PENDIENTE -> RESUELTA.
type StockAlert struct {
	ID           int64
	ProductID    int64
	SKU          string
	ProductName  string
	CategoryName string
	SupplierName string
	Type         string
	Status       string
	CurrentStock int
	MinStock     int
	GeneratedAt  time.Time
	ResolvedAt   *time.Time
	ResolvedBy   *int64
}

// Pending indica si la alerta sigue abierta.
func (a *StockAlert) Pending() bool { return a.Status == AlertStatusPending }

// LowStockProduct es una fila de la vista vw_productos_stock_bajo.
type LowStockProduct struct {
	ProductID    int64
	SKU          string
	Name         string
	CurrentStock int
	MinStock     int
	Shortage     int
	SupplierName string
}
