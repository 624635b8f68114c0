package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/repository"
)

// MovementUseCase historial y registro de movimientos de inventario.
// El registro se delega en sp_registrar_movimiento, que actualiza el stock y genera alertas.
type MovementUseCase struct {
	repo     repository.MovementRepository
	products repository.ProductRepository
	catalog  repository.CatalogRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository, products repository.ProductRepository, catalog repository.CatalogRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo, products: products, catalog: catalog}
}

// List devuelve una página del historial filtrada por texto y tipo de movimiento.
func (uc *MovementUseCase) List(ctx context.Context, search, typeID, page string) (*dto.MovementListResponse, error) {
	p := domain.NewPage(page)
	f := repository.MovementFilter{Search: search, TypeID: parseFilterID(typeID), Page: p}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	types, err := uc.repo.Types(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.MovementListResponse{
		Items:  toMovementResponses(list),
		Types:  movementTypeItems(types),
		Page:   domain.NewPageInfo(p, total),
		Search: search,
		TypeID: f.TypeID,
	}, nil
}

// FormData productos activos, tipos y proveedores para el formulario de registro.
func (uc *MovementUseCase) FormData(ctx context.Context) (*dto.MovementFormData, error) {
	products, err := uc.products.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	types, err := uc.repo.Types(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.catalog.Suppliers(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItem, 0, len(products))
	for _, p := range products {
		items = append(items, dto.CatalogItem{
			ID:    p.ID,
			Name:  p.SKU + " - " + p.Name,
			Extra: strconv.Itoa(p.CurrentStock),
		})
	}
	return &dto.MovementFormData{
		Products:  items,
		Types:     movementTypeItems(types),
		Suppliers: supplierItems(suppliers),
	}, nil
}

// Register valida el formulario y registra el movimiento a nombre del usuario actual.
// Los rechazos de negocio del procedimiento (stock insuficiente, tipo inválido) llegan
// como ValidationError con el mensaje de la base.
func (uc *MovementUseCase) Register(ctx context.Context, userID int64, in dto.MovementForm) (*dto.MovementResultResponse, error) {
	productID, err := parseID(in.ProductID, "id_producto", "Seleccione un producto")
	if err != nil {
		return nil, err
	}
	typeID, err := parseID(in.TypeID, "id_tipo_movimiento", "Seleccione un tipo de movimiento")
	if err != nil {
		return nil, err
	}
	qty, err := strconv.Atoi(strings.TrimSpace(in.Quantity))
	if err != nil || qty <= 0 {
		return nil, domain.NewValidationError("cantidad", "La cantidad debe ser mayor a 0")
	}
	supplierID, err := parseOptionalID(in.SupplierID, "id_proveedor", "Proveedor inválido")
	if err != nil {
		return nil, err
	}

	res, err := uc.repo.Register(ctx, repository.RegisterMovementParams{
		ProductID:      productID,
		TypeID:         typeID,
		Quantity:       qty,
		UserID:         userID,
		SupplierID:     supplierID,
		DocumentNumber: strings.TrimSpace(in.DocumentNumber),
		Notes:          strings.TrimSpace(in.Notes),
	})
	if err != nil {
		return nil, err
	}
	return &dto.MovementResultResponse{
		MovementID:    res.MovementID,
		PreviousStock: res.PreviousStock,
		NewStock:      res.NewStock,
	}, nil
}
