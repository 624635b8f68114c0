package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
	"github.com/jhoicas/sgi-guatemart/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productSelect = `
	SELECT p.id_producto, p.sku, p.codigo_barras, p.nombre_producto, p.descripcion,
	       p.id_categoria, c.nombre_categoria, p.id_proveedor, pr.nombre_proveedor,
	       p.precio_compra, p.precio_venta, p.stock_actual, p.stock_minimo, p.stock_maximo,
	       p.ubicacion, p.activo, p.fecha_creacion, p.fecha_modificacion
	FROM productos p
	LEFT JOIN categorias c ON c.id_categoria = p.id_categoria
	LEFT JOIN proveedores pr ON pr.id_proveedor = p.id_proveedor`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db *Database
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *Database) *ProductRepo {
	return &ProductRepo{db: db}
}

// List devuelve una página de productos activos y el total filtrado.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	lq := NewListQuery(productSelect, "SELECT COUNT(*) AS total FROM productos p").
		Where("p.activo = TRUE").
		Search(f.Search, "p.sku", "p.nombre_producto").
		OrderBy("p.nombre_producto").
		Paginate(f.Page)

	countSQL, countArgs := lq.BuildCount()
	total, err := r.db.Count(ctx, countSQL, countArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	query, args := lq.Build()
	records, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return mapProducts(records), total, nil
}

// ListActive devuelve todos los productos activos (selector del formulario de movimientos).
func (r *ProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	records, err := r.db.Query(ctx, productSelect+` WHERE p.activo = TRUE ORDER BY p.nombre_producto`)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	return mapProducts(records), nil
}

// GetByID obtiene un producto activo por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	rec, err := r.db.QueryOne(ctx, productSelect+` WHERE p.id_producto = $1 AND p.activo = TRUE`, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	return mapProduct(rec), nil
}

// ExistsSKU indica si algún producto (activo o no) ya usa el SKU.
func (r *ProductRepo) ExistsSKU(ctx context.Context, sku string) (bool, error) {
	n, err := r.db.Count(ctx, `SELECT COUNT(*) AS total FROM productos WHERE sku = $1`, sku)
	if err != nil {
		return false, fmt.Errorf("count sku: %w", err)
	}
	return n > 0, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO productos (sku, codigo_barras, nombre_producto, descripcion, id_categoria, id_proveedor,
		                       precio_compra, precio_venta, stock_actual, stock_minimo, stock_maximo, ubicacion, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, TRUE)`
	_, err := r.db.Exec(ctx, query,
		p.SKU, nullIfEmpty(p.Barcode), p.Name, nullIfEmpty(p.Description), p.CategoryID, p.SupplierID,
		p.PurchasePrice, p.SalePrice, p.CurrentStock, p.MinStock, p.MaxStock, nullIfEmpty(p.Location),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update modifica los campos editables. sku y stock_actual nunca se actualizan aquí.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE productos
		SET codigo_barras = $2, nombre_producto = $3, descripcion = $4, id_categoria = $5, id_proveedor = $6,
		    precio_compra = $7, precio_venta = $8, stock_minimo = $9, stock_maximo = $10, ubicacion = $11,
		    fecha_modificacion = now()
		WHERE id_producto = $1 AND activo = TRUE`
	n, err := r.db.Exec(ctx, query,
		p.ID, nullIfEmpty(p.Barcode), p.Name, nullIfEmpty(p.Description), p.CategoryID, p.SupplierID,
		p.PurchasePrice, p.SalePrice, p.MinStock, p.MaxStock, nullIfEmpty(p.Location),
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el producto como inactivo. Devuelve false si no existía o ya estaba inactivo.
func (r *ProductRepo) SoftDelete(ctx context.Context, id int64) (bool, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE productos SET activo = FALSE, fecha_modificacion = now() WHERE id_producto = $1 AND activo = TRUE`, id)
	if err != nil {
		return false, fmt.Errorf("soft delete product: %w", err)
	}
	return n > 0, nil
}

func mapProducts(records []Record) []*entity.Product {
	list := make([]*entity.Product, 0, len(records))
	for _, rec := range records {
		list = append(list, mapProduct(rec))
	}
	return list
}

func mapProduct(rec Record) *entity.Product {
	return &entity.Product{
		ID:            rec.Int64("id_producto"),
		SKU:           rec.String("sku"),
		Barcode:       rec.String("codigo_barras"),
		Name:          rec.String("nombre_producto"),
		Description:   rec.String("descripcion"),
		CategoryID:    rec.Int64Ptr("id_categoria"),
		CategoryName:  rec.String("nombre_categoria"),
		SupplierID:    rec.Int64Ptr("id_proveedor"),
		SupplierName:  rec.String("nombre_proveedor"),
		PurchasePrice: rec.Decimal("precio_compra"),
		SalePrice:     rec.Decimal("precio_venta"),
		CurrentStock:  rec.Int("stock_actual"),
		MinStock:      rec.Int("stock_minimo"),
		MaxStock:      rec.Int("stock_maximo"),
		Location:      rec.String("ubicacion"),
		Active:        rec.Bool("activo"),
		CreatedAt:     rec.Time("fecha_creacion"),
		UpdatedAt:     rec.TimePtr("fecha_modificacion"),
	}
}

// nullIfEmpty guarda NULL en lugar de cadena vacía en columnas opcionales.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
