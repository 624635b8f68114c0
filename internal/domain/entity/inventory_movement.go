package entity

import "time"

// MovementType describe un tipo de movimiento y su efecto sobre el stock:
// +1 entrada, -1 salida.
type MovementType struct {
	ID          int64
	Name        string
	StockEffect int
	Active      bool
}

// Movement es un cambio de stock registrado. Solo lo crea el procedimiento
// sp_registrar_movimiento, que actualiza stock_actual en la misma transacción.
type Movement struct {
	ID             int64
	ProductID      int64
	SKU            string
	ProductName    string
	TypeID         int64
	TypeName       string
	StockEffect    int
	Quantity       int
	PreviousStock  int
	NewStock       int
	UserID         int64
	Username       string
	SupplierID     *int64
	SupplierName   string
	DocumentNumber string
	Notes          string
	Date           time.Time
}

// MovementResult es la salida de sp_registrar_movimiento.
type MovementResult struct {
	MovementID    int64
	PreviousStock int
	NewStock      int
}
