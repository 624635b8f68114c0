package dto

import "github.com/shopspring/decimal"

// DashboardStatsPublic columnas de estadísticas visibles para todos los roles.
// El resto (valores monetarios) solo se muestra a quien puede ver precios.
var DashboardStatsPublic = []string{"total_productos", "stock_total", "productos_bajo_stock", "movimientos_hoy"}

// DashboardResponse datos del tablero principal.
type DashboardResponse struct {
	Stats           map[string]any     `json:"stats"`
	TopProducts     []TopProductDTO    `json:"productos_vendidos"`
	LowStock        []LowStockResponse `json:"alertas"`
	LowStockTotal   int                `json:"alertas_total"`
	PendingAlerts   int                `json:"alertas_pendientes"`
	RecentMovements []MovementResponse `json:"movimientos"`
	CanViewFinance  bool               `json:"puede_ver_finanzas"`
	// Error no vacío indica una vista degradada por fallo de la base.
	Error string `json:"error,omitempty"`
}

// TopProductDTO producto más vendido. Revenue es nil sin permiso de precios.
type TopProductDTO struct {
	SKU       string           `json:"sku"`
	Name      string           `json:"nombre_producto"`
	UnitsSold int              `json:"unidades_vendidas"`
	Revenue   *decimal.Decimal `json:"total_vendido,omitempty"`
}
