package dto

// Categorías de mensajes flash (clases CSS de las alertas en las plantillas).
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// Flash mensaje de un solo uso que se muestra en la siguiente página renderizada.
type Flash struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

// ErrorResponse cuerpo de error HTTP para rutas JSON.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
