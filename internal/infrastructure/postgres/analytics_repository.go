package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
	"github.com/jhoicas/sgi-guatemart/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo lee los indicadores del tablero desde sp_obtener_dashboard.
type DashboardRepo struct {
	db *Database
}

// NewDashboardRepository construye el adaptador de lectura del tablero.
func NewDashboardRepository(db *Database) *DashboardRepo {
	return &DashboardRepo{db: db}
}

// Summary devuelve los cuatro conjuntos del procedimiento: estadísticas generales,
// productos con más salidas, alertas pendientes y movimientos recientes.
// Un conjunto ausente queda vacío.
func (r *DashboardRepo) Summary(ctx context.Context) (*entity.DashboardSummary, error) {
	sets, err := r.db.Procedure(ctx, "sp_obtener_dashboard")
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	out := &entity.DashboardSummary{Stats: map[string]any{}}
	if len(sets) > 0 && len(sets[0]) > 0 {
		for k, v := range sets[0][0] {
			out.Stats[k] = v
		}
	}
	if len(sets) > 1 {
		for _, rec := range sets[1] {
			out.TopProducts = append(out.TopProducts, entity.TopProduct{
				SKU:       rec.String("sku"),
				Name:      rec.String("nombre_producto"),
				UnitsSold: rec.Int("unidades_vendidas"),
				Revenue:   rec.Decimal("ingresos"),
			})
		}
	}
	if len(sets) > 2 && len(sets[2]) > 0 {
		out.PendingAlerts = sets[2][0].Int("alertas_pendientes")
	}
	if len(sets) > 3 {
		out.RecentMovements = mapMovements(sets[3])
	}
	return out, nil
}
