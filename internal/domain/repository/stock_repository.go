package repository

import (
	"context"

	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
)

// AlertRepository define el puerto de persistencia para alertas de stock.
type AlertRepository interface {
	// ListPending ordena STOCK_CRITICO antes que STOCK_MINIMO y luego por fecha descendente.
	ListPending(ctx context.Context) ([]*entity.StockAlert, error)
	// Resolve marca la alerta como RESUELTA solo si sigue PENDIENTE.
	// Devuelve false si no existía o ya estaba resuelta.
	Resolve(ctx context.Context, id, userID int64) (bool, error)
	LowStock(ctx context.Context) ([]entity.LowStockProduct, error)
}
