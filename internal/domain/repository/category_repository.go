package repository

import (
	"context"

	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
)

// CatalogRepository expone los datos de referencia de los formularios.
type CatalogRepository interface {
	Categories(ctx context.Context) ([]entity.Category, error)
	Suppliers(ctx context.Context) ([]entity.Supplier, error)
	Roles(ctx context.Context) ([]entity.Role, error)
}
