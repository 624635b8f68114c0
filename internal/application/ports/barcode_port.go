package ports

import "context"

// BarcodeProduct datos de un producto encontrado en un catálogo externo.
type BarcodeProduct struct {
	Barcode     string
	Name        string
	Brand       string
	Categories  string
	ImageURL    string
	Quantity    string
	GenericName string
	Source      string
}

// BarcodeLookup define el puerto de salida hacia el catálogo externo de códigos de barras.
// Lookup devuelve (nil, nil) cuando el producto no existe en el catálogo.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type BarcodeLookup interface {
	Lookup(ctx context.Context, code string) (*BarcodeProduct, error)
}
