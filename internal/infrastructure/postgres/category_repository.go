package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
	"github.com/jhoicas/sgi-guatemart/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo lee categorías, proveedores y roles para los formularios.
type CatalogRepo struct {
	db *Database
}

// NewCatalogRepository construye el adaptador de datos de referencia.
func NewCatalogRepository(db *Database) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// Categories devuelve las categorías activas.
func (r *CatalogRepo) Categories(ctx context.Context) ([]entity.Category, error) {
	records, err := r.db.Query(ctx,
		`SELECT id_categoria, nombre_categoria, activo FROM categorias WHERE activo = TRUE ORDER BY nombre_categoria`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	list := make([]entity.Category, 0, len(records))
	for _, rec := range records {
		list = append(list, entity.Category{
			ID:     rec.Int64("id_categoria"),
			Name:   rec.String("nombre_categoria"),
			Active: rec.Bool("activo"),
		})
	}
	return list, nil
}

// Suppliers devuelve los proveedores activos.
func (r *CatalogRepo) Suppliers(ctx context.Context) ([]entity.Supplier, error) {
	records, err := r.db.Query(ctx,
		`SELECT id_proveedor, nombre_proveedor, activo FROM proveedores WHERE activo = TRUE ORDER BY nombre_proveedor`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	list := make([]entity.Supplier, 0, len(records))
	for _, rec := range records {
		list = append(list, entity.Supplier{
			ID:     rec.Int64("id_proveedor"),
			Name:   rec.String("nombre_proveedor"),
			Active: rec.Bool("activo"),
		})
	}
	return list, nil
}

// Roles devuelve los roles definidos.
func (r *CatalogRepo) Roles(ctx context.Context) ([]entity.Role, error) {
	records, err := r.db.Query(ctx, `SELECT id_rol, nombre_rol, descripcion FROM roles ORDER BY id_rol`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	list := make([]entity.Role, 0, len(records))
	for _, rec := range records {
		list = append(list, entity.Role{
			ID:          rec.Int64("id_rol"),
			Name:        rec.String("nombre_rol"),
			Description: rec.String("descripcion"),
		})
	}
	return list, nil
}
