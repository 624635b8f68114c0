package repository

import (
	"context"

	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
)

// MovementFilter filtros del historial de movimientos.
type MovementFilter struct {
	Search string
	TypeID int64
	Page   domain.Page
}

// RegisterMovementParams parámetros de sp_registrar_movimiento.
type RegisterMovementParams struct {
	ProductID      int64
	TypeID         int64
	Quantity       int
	UserID         int64
	SupplierID     *int64
	DocumentNumber string
	Notes          string
}

// MovementRepository define el puerto de persistencia para movimientos de stock.
type MovementRepository interface {
	List(ctx context.Context, f MovementFilter) ([]*entity.Movement, int, error)
	ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.Movement, error)
	Register(ctx context.Context, p RegisterMovementParams) (*entity.MovementResult, error)
	Types(ctx context.Context) ([]entity.MovementType, error)
}
