package entity

// Category agrupa productos del catálogo.
type Category struct {
	ID     int64
	Name   string
	Active bool
}

// Supplier es un proveedor de productos.
type Supplier struct {
	ID     int64
	Name   string
	Active bool
}
