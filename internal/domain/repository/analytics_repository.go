package repository

import (
	"context"

	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
)

// DashboardRepository define las consultas de solo lectura del tablero.
type DashboardRepository interface {
	Summary(ctx context.Context) (*entity.DashboardSummary, error)
}
