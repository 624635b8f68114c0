package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
	"github.com/jhoicas/sgi-guatemart/internal/domain/rbac"
)

func toProductResponse(p *entity.Product, perms rbac.Permissions) dto.ProductResponse {
	out := dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Barcode:      p.Barcode,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		MaxStock:     p.MaxStock,
		Location:     p.Location,
		BelowMinimum: p.BelowMinimum(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if perms.ViewPrices {
		out.PurchasePrice = decimalPtr(p.PurchasePrice)
		out.SalePrice = decimalPtr(p.SalePrice)
	}
	return out
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		SKU:            m.SKU,
		ProductName:    m.ProductName,
		TypeName:       m.TypeName,
		Entry:          m.StockEffect > 0,
		Quantity:       m.Quantity,
		PreviousStock:  m.PreviousStock,
		NewStock:       m.NewStock,
		Username:       m.Username,
		SupplierName:   m.SupplierName,
		DocumentNumber: m.DocumentNumber,
		Notes:          m.Notes,
		Date:           m.Date,
	}
}

func toMovementResponses(list []*entity.Movement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return out
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		Email:      u.Email,
		RoleID:     u.RoleID,
		RoleName:   u.RoleName,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
		LastAccess: u.LastAccess,
	}
}

func toAlertResponse(a *entity.StockAlert) dto.AlertResponse {
	return dto.AlertResponse{
		ID:           a.ID,
		ProductID:    a.ProductID,
		SKU:          a.SKU,
		ProductName:  a.ProductName,
		CategoryName: a.CategoryName,
		SupplierName: a.SupplierName,
		Type:         a.Type,
		Critical:     a.Type == entity.AlertTypeCritical,
		CurrentStock: a.CurrentStock,
		MinStock:     a.MinStock,
		GeneratedAt:  a.GeneratedAt,
	}
}

func toLowStockResponse(p entity.LowStockProduct) dto.LowStockResponse {
	return dto.LowStockResponse{
		ProductID:    p.ProductID,
		SKU:          p.SKU,
		Name:         p.Name,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		Shortage:     p.Shortage,
		SupplierName: p.SupplierName,
	}
}

func categoryItems(list []entity.Category) []dto.CatalogItem {
	out := make([]dto.CatalogItem, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CatalogItem{ID: c.ID, Name: c.Name})
	}
	return out
}

func supplierItems(list []entity.Supplier) []dto.CatalogItem {
	out := make([]dto.CatalogItem, 0, len(list))
	for _, s := range list {
		out = append(out, dto.CatalogItem{ID: s.ID, Name: s.Name})
	}
	return out
}

func roleItems(list []entity.Role) []dto.CatalogItem {
	out := make([]dto.CatalogItem, 0, len(list))
	for _, r := range list {
		out = append(out, dto.CatalogItem{ID: r.ID, Name: r.Name, Extra: r.Description})
	}
	return out
}

func movementTypeItems(list []entity.MovementType) []dto.CatalogItem {
	out := make([]dto.CatalogItem, 0, len(list))
	for _, t := range list {
		extra := "salida"
		if t.StockEffect > 0 {
			extra = "entrada"
		}
		out = append(out, dto.CatalogItem{ID: t.ID, Name: t.Name, Extra: extra})
	}
	return out
}
