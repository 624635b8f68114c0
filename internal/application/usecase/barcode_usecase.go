package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/application/ports"
)

// BarcodeUseCase busca datos de producto por código de barras en un catálogo externo
// para prellenar el formulario de alta.
type BarcodeUseCase struct {
	lookup ports.BarcodeLookup
}

// NewBarcodeUseCase construye el caso de uso.
func NewBarcodeUseCase(lookup ports.BarcodeLookup) *BarcodeUseCase {
	return &BarcodeUseCase{lookup: lookup}
}

// ValidBarcode acepta solo dígitos con longitud EAN-8, UPC-A, EAN-13 o GTIN-14.
func ValidBarcode(code string) bool {
	switch len(code) {
	case 8, 12, 13, 14:
	default:
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Search nunca devuelve error: los fallos del servicio externo se tratan como "no encontrado".
func (uc *BarcodeUseCase) Search(ctx context.Context, code string) *dto.BarcodeResponse {
	code = strings.TrimSpace(code)
	if !ValidBarcode(code) {
		return &dto.BarcodeResponse{
			Success: false,
			Error:   "Código de barras inválido. Debe tener 8, 12, 13 o 14 dígitos.",
		}
	}
	product, err := uc.lookup.Lookup(ctx, code)
	if err != nil || product == nil {
		return &dto.BarcodeResponse{
			Success: false,
			Message: "Producto no encontrado. Puedes ingresar los datos manualmente.",
		}
	}
	return &dto.BarcodeResponse{
		Success: true,
		Data: &dto.BarcodeProductData{
			Name:        product.Name,
			Barcode:     code,
			Description: product.GenericName,
			Brand:       product.Brand,
			ImageURL:    product.ImageURL,
			Source:      product.Source,
		},
		Message: "Producto encontrado en " + product.Source,
	}
}
