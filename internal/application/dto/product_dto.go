package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductForm campos del formulario de producto. Los numéricos llegan como texto
// y se validan en el caso de uso. SKU y StockActual solo se leen al crear.
type ProductForm struct {
	SKU           string `form:"sku"`
	Barcode       string `form:"codigo_barras"`
	Name          string `form:"nombre_producto"`
	Description   string `form:"descripcion"`
	CategoryID    string `form:"id_categoria"`
	SupplierID    string `form:"id_proveedor"`
	PurchasePrice string `form:"precio_compra"`
	SalePrice     string `form:"precio_venta"`
	CurrentStock  string `form:"stock_actual"`
	MinStock      string `form:"stock_minimo"`
	MaxStock      string `form:"stock_maximo"`
	Location      string `form:"ubicacion"`
}

// ProductResponse salida de un producto. Los precios son nil si el rol no puede verlos.
type ProductResponse struct {
	ID            int64            `json:"id_producto"`
	SKU           string           `json:"sku"`
	Barcode       string           `json:"codigo_barras"`
	Name          string           `json:"nombre_producto"`
	Description   string           `json:"descripcion"`
	CategoryID    *int64           `json:"id_categoria"`
	CategoryName  string           `json:"nombre_categoria"`
	SupplierID    *int64           `json:"id_proveedor"`
	SupplierName  string           `json:"nombre_proveedor"`
	PurchasePrice *decimal.Decimal `json:"precio_compra,omitempty"`
	SalePrice     *decimal.Decimal `json:"precio_venta,omitempty"`
	CurrentStock  int              `json:"stock_actual"`
	MinStock      int              `json:"stock_minimo"`
	MaxStock      int              `json:"stock_maximo"`
	Location      string           `json:"ubicacion"`
	BelowMinimum  bool             `json:"bajo_minimo"`
	CreatedAt     time.Time        `json:"fecha_creacion"`
	UpdatedAt     *time.Time       `json:"fecha_modificacion"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items  []ProductResponse `json:"items"`
	Page   PageInfo          `json:"page"`
	Search string            `json:"q"`
}

// ProductDetailResponse producto con su historial reciente de movimientos.
type ProductDetailResponse struct {
	Product   ProductResponse    `json:"producto"`
	Movements []MovementResponse `json:"movimientos"`
}

// ProductFormData catálogos para los selects del formulario de producto.
type ProductFormData struct {
	Categories []CatalogItem `json:"categorias"`
	Suppliers  []CatalogItem `json:"proveedores"`
}

// CatalogItem opción de un select (categoría, proveedor, rol, tipo, producto).
type CatalogItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Extra string `json:"extra,omitempty"`
}
