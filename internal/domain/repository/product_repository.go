package repository

import (
	"context"

	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
)

// ProductFilter filtros del listado de productos. Search busca en SKU y nombre.
type ProductFilter struct {
	Search string
	Page   domain.Page
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas solo ven productos activos; GetByID devuelve (nil, nil) si no existe.
type ProductRepository interface {
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, int, error)
	ListActive(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	ExistsSKU(ctx context.Context, sku string) (bool, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id int64) (bool, error)
}
