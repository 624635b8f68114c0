package dto

// BarcodeRequest cuerpo JSON de POST /productos/buscar-barcode.
type BarcodeRequest struct {
	Code string `json:"codigo_barras"`
}

// BarcodeResponse respuesta JSON de la búsqueda por código de barras:
// encontrado {success, data, mensaje}; no encontrado {success:false, mensaje};
// código inválido {success:false, error}.
type BarcodeResponse struct {
	Success bool                `json:"success"`
	Data    *BarcodeProductData `json:"data,omitempty"`
	Message string              `json:"mensaje,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// BarcodeProductData datos para prellenar el formulario de producto.
type BarcodeProductData struct {
	Name        string `json:"nombre_producto"`
	Barcode     string `json:"codigo_barras"`
	Description string `json:"descripcion"`
	Brand       string `json:"marca"`
	ImageURL    string `json:"imagen_url"`
	Source      string `json:"fuente"`
}
