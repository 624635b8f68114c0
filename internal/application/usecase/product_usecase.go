package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
	"github.com/jhoicas/sgi-guatemart/internal/domain/rbac"
	"github.com/jhoicas/sgi-guatemart/internal/domain/repository"
)

// productHistoryLimit movimientos mostrados en el detalle de un producto.
const productHistoryLimit = 20

// ProductUseCase casos de uso CRUD para productos. El stock solo cambia vía movimientos.
type ProductUseCase struct {
	repo      repository.ProductRepository
	movements repository.MovementRepository
	catalog   repository.CatalogRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, movements repository.MovementRepository, catalog repository.CatalogRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, movements: movements, catalog: catalog}
}

// List devuelve una página de productos activos filtrada por SKU o nombre.
func (uc *ProductUseCase) List(ctx context.Context, perms rbac.Permissions, search, page string) (*dto.ProductListResponse, error) {
	p := domain.NewPage(page)
	list, total, err := uc.repo.List(ctx, repository.ProductFilter{Search: search, Page: p})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, product := range list {
		items = append(items, toProductResponse(product, perms))
	}
	return &dto.ProductListResponse{
		Items:  items,
		Page:   domain.NewPageInfo(p, total),
		Search: search,
	}, nil
}

// Get devuelve el detalle de un producto con sus últimos movimientos. ErrNotFound si no existe.
func (uc *ProductUseCase) Get(ctx context.Context, perms rbac.Permissions, id int64) (*dto.ProductDetailResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	history, err := uc.movements.ListByProduct(ctx, id, productHistoryLimit)
	if err != nil {
		return nil, err
	}
	return &dto.ProductDetailResponse{
		Product:   toProductResponse(product, perms),
		Movements: toMovementResponses(history),
	}, nil
}

// FormData catálogos activos para los selects del formulario.
func (uc *ProductUseCase) FormData(ctx context.Context) (*dto.ProductFormData, error) {
	categories, err := uc.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.catalog.Suppliers(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProductFormData{Categories: categoryItems(categories), Suppliers: supplierItems(suppliers)}, nil
}

// Create valida el formulario, comprueba que el SKU no exista y da de alta el producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductForm) (*dto.ProductResponse, error) {
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		return nil, domain.NewValidationError("sku", "El SKU es obligatorio")
	}
	product := &entity.Product{SKU: sku, Active: true}
	if err := applyProductForm(product, in); err != nil {
		return nil, err
	}
	stock, err := parseQuantity(in.CurrentStock, "stock_actual", "El stock actual debe ser un número entero no negativo")
	if err != nil {
		return nil, err
	}
	product.CurrentStock = stock

	exists, err := uc.repo.ExistsSKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewValidationError("sku", "El SKU ya existe")
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		// Otra petición pudo insertar el mismo SKU entre la comprobación y el INSERT.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewValidationError("sku", "El SKU ya existe")
		}
		return nil, err
	}
	out := toProductResponse(product, rbac.Permissions{ViewPrices: true})
	return &out, nil
}

// Update modifica los campos editables. SKU y stock actual nunca cambian aquí.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductForm) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := applyProductForm(product, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	out := toProductResponse(product, rbac.Permissions{ViewPrices: true})
	return &out, nil
}

// Delete desactiva el producto (borrado lógico).
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// applyProductForm copia y valida los campos comunes de alta y edición.
func applyProductForm(p *entity.Product, in dto.ProductForm) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.NewValidationError("nombre_producto", "El nombre del producto es obligatorio")
	}
	categoryID, err := parseOptionalID(in.CategoryID, "id_categoria", "Categoría inválida")
	if err != nil {
		return err
	}
	supplierID, err := parseOptionalID(in.SupplierID, "id_proveedor", "Proveedor inválido")
	if err != nil {
		return err
	}
	purchase, err := parsePrice(in.PurchasePrice, "precio_compra", "El precio de compra debe ser un número no negativo")
	if err != nil {
		return err
	}
	sale, err := parsePrice(in.SalePrice, "precio_venta", "El precio de venta debe ser un número no negativo")
	if err != nil {
		return err
	}
	minStock, err := parseQuantity(in.MinStock, "stock_minimo", "El stock mínimo debe ser un número entero no negativo")
	if err != nil {
		return err
	}
	maxStock, err := parseQuantity(in.MaxStock, "stock_maximo", "El stock máximo debe ser un número entero no negativo")
	if err != nil {
		return err
	}
	if maxStock > 0 && maxStock < minStock {
		return domain.NewValidationError("stock_maximo", "El stock máximo no puede ser menor que el mínimo")
	}

	p.Barcode = strings.TrimSpace(in.Barcode)
	p.Name = name
	p.Description = strings.TrimSpace(in.Description)
	p.CategoryID = categoryID
	p.SupplierID = supplierID
	p.PurchasePrice = purchase
	p.SalePrice = sale
	p.MinStock = minStock
	p.MaxStock = maxStock
	p.Location = strings.TrimSpace(in.Location)
	return nil
}
