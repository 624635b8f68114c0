package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
	"github.com/jhoicas/sgi-guatemart/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	db *Database
}

// NewAlertRepository construye el adaptador de persistencia para alertas de stock.
func NewAlertRepository(db *Database) *AlertRepo {
	return &AlertRepo{db: db}
}

// ListPending devuelve las alertas pendientes, críticas primero.
func (r *AlertRepo) ListPending(ctx context.Context) ([]*entity.StockAlert, error) {
	records, err := r.db.Query(ctx, `
		SELECT a.id_alerta, a.id_producto, p.sku, p.nombre_producto, c.nombre_categoria, pr.nombre_proveedor,
		       a.tipo_alerta, a.estado, p.stock_actual, p.stock_minimo,
		       a.fecha_generacion, a.fecha_resolucion, a.id_usuario_resolucion
		FROM alertas_stock a
		INNER JOIN productos p ON p.id_producto = a.id_producto
		LEFT JOIN categorias c ON c.id_categoria = p.id_categoria
		LEFT JOIN proveedores pr ON pr.id_proveedor = p.id_proveedor
		WHERE a.estado = $1
		ORDER BY CASE a.tipo_alerta WHEN $2 THEN 1 WHEN $3 THEN 2 ELSE 3 END,
		         a.fecha_generacion DESC`,
		entity.AlertStatusPending, entity.AlertTypeCritical, entity.AlertTypeMinimum)
	if err != nil {
		return nil, fmt.Errorf("list pending alerts: %w", err)
	}
	alerts := make([]*entity.StockAlert, 0, len(records))
	for _, rec := range records {
		alerts = append(alerts, &entity.StockAlert{
			ID:           rec.Int64("id_alerta"),
			ProductID:    rec.Int64("id_producto"),
			SKU:          rec.String("sku"),
			ProductName:  rec.String("nombre_producto"),
			CategoryName: rec.String("nombre_categoria"),
			SupplierName: rec.String("nombre_proveedor"),
			Type:         rec.String("tipo_alerta"),
			Status:       rec.String("estado"),
			CurrentStock: rec.Int("stock_actual"),
			MinStock:     rec.Int("stock_minimo"),
			GeneratedAt:  rec.Time("fecha_generacion"),
			ResolvedAt:   rec.TimePtr("fecha_resolucion"),
			ResolvedBy:   rec.Int64Ptr("id_usuario_resolucion"),
		})
	}
	return alerts, nil
}

// Resolve pasa la alerta de PENDIENTE a RESUELTA. Una alerta ya resuelta no se modifica.
func (r *AlertRepo) Resolve(ctx context.Context, id, userID int64) (bool, error) {
	n, err := r.db.Exec(ctx, `
		UPDATE alertas_stock
		SET estado = $2, fecha_resolucion = now(), id_usuario_resolucion = $3
		WHERE id_alerta = $1 AND estado = $4`,
		id, entity.AlertStatusResolved, userID, entity.AlertStatusPending)
	if err != nil {
		return false, fmt.Errorf("resolve alert: %w", err)
	}
	return n > 0, nil
}

// LowStock lee la vista de productos en o por debajo del stock mínimo.
func (r *AlertRepo) LowStock(ctx context.Context) ([]entity.LowStockProduct, error) {
	records, err := r.db.Query(ctx, `
		SELECT id_producto, sku, nombre_producto, stock_actual, stock_minimo, faltante, nombre_proveedor
		FROM vw_productos_stock_bajo
		ORDER BY faltante DESC, nombre_producto`)
	if err != nil {
		return nil, fmt.Errorf("low stock products: %w", err)
	}
	list := make([]entity.LowStockProduct, 0, len(records))
	for _, rec := range records {
		list = append(list, entity.LowStockProduct{
			ProductID:    rec.Int64("id_producto"),
			SKU:          rec.String("sku"),
			Name:         rec.String("nombre_producto"),
			CurrentStock: rec.Int("stock_actual"),
			MinStock:     rec.Int("stock_minimo"),
			Shortage:     rec.Int("faltante"),
			SupplierName: rec.String("nombre_proveedor"),
		})
	}
	return list, nil
}
