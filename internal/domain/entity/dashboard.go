package entity

import "github.com/shopspring/decimal"

// DashboardSummary reúne los cuatro conjuntos de resultados de sp_obtener_dashboard.
// Stats conserva las columnas tal como las devuelve el procedimiento.
type DashboardSummary struct {
	Stats           map[string]any
	TopProducts     []TopProduct
	PendingAlerts   int
	RecentMovements []*Movement
}

// TopProduct es un producto con más salidas en el periodo del tablero.
type TopProduct struct {
	SKU       string
	Name      string
	UnitsSold int
	Revenue   decimal.Decimal
}
