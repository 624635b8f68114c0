package dto

import "time"

// MovementForm formulario de registro de movimiento.
type MovementForm struct {
	ProductID      string `form:"id_producto"`
	TypeID         string `form:"id_tipo_movimiento"`
	Quantity       string `form:"cantidad"`
	SupplierID     string `form:"id_proveedor"`
	DocumentNumber string `form:"numero_documento"`
	Notes          string `form:"observaciones"`
}

// MovementResponse fila del historial de movimientos.
type MovementResponse struct {
	ID             int64     `json:"id_movimiento"`
	ProductID      int64     `json:"id_producto"`
	SKU            string    `json:"sku"`
	ProductName    string    `json:"nombre_producto"`
	TypeName       string    `json:"nombre_tipo"`
	Entry          bool      `json:"entrada"`
	Quantity       int       `json:"cantidad"`
	PreviousStock  int       `json:"stock_anterior"`
	NewStock       int       `json:"stock_nuevo"`
	Username       string    `json:"usuario"`
	SupplierName   string    `json:"nombre_proveedor"`
	DocumentNumber string    `json:"numero_documento"`
	Notes          string    `json:"observaciones"`
	Date           time.Time `json:"fecha_movimiento"`
}

// MovementListResponse historial paginado con los filtros aplicados.
type MovementListResponse struct {
	Items  []MovementResponse `json:"items"`
	Types  []CatalogItem      `json:"tipos_movimiento"`
	Page   PageInfo           `json:"page"`
	Search string             `json:"q"`
	TypeID int64              `json:"tipo"`
}

// MovementFormData catálogos del formulario de registro.
// Products.Extra lleva el stock actual para mostrarlo en el select.
type MovementFormData struct {
	Products  []CatalogItem `json:"productos"`
	Types     []CatalogItem `json:"tipos_movimiento"`
	Suppliers []CatalogItem `json:"proveedores"`
}

// MovementResultResponse resultado de registrar un movimiento.
type MovementResultResponse struct {
	MovementID    int64 `json:"id_movimiento"`
	PreviousStock int   `json:"stock_anterior"`
	NewStock      int   `json:"stock_nuevo"`
}

// AlertResponse alerta de stock pendiente.
type AlertResponse struct {
	ID           int64     `json:"id_alerta"`
	ProductID    int64     `json:"id_producto"`
	SKU          string    `json:"sku"`
	ProductName  string    `json:"nombre_producto"`
	CategoryName string    `json:"nombre_categoria"`
	SupplierName string    `json:"nombre_proveedor"`
	Type         string    `json:"tipo_alerta"`
	Critical     bool      `json:"critica"`
	CurrentStock int       `json:"stock_actual"`
	MinStock     int       `json:"stock_minimo"`
	GeneratedAt  time.Time `json:"fecha_generacion"`
}

// LowStockResponse producto en o bajo su stock mínimo.
type LowStockResponse struct {
	ProductID    int64  `json:"id_producto"`
	SKU          string `json:"sku"`
	Name         string `json:"nombre_producto"`
	CurrentStock int    `json:"stock_actual"`
	MinStock     int    `json:"stock_minimo"`
	Shortage     int    `json:"faltante"`
	SupplierName string `json:"nombre_proveedor"`
}
