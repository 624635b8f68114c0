package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrSelfAction      = errors.New("no puede realizar esta acción sobre su propio usuario")
	ErrExternalService = errors.New("servicio externo no disponible")
	ErrDatabase        = errors.New("error de base de datos")
)

// ValidationError describe un dato de entrada rechazado antes de escribir en la base.
// El mensaje se muestra tal cual al usuario.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError construye un error de validación para el campo indicado.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// DatabaseError envuelve el error del driver con la operación que falló.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrDatabase).
func (e *DatabaseError) Is(target error) bool { return target == ErrDatabase }

// ValidationMessage devuelve el mensaje visible de un ValidationError, o fallback si err no lo es.
func ValidationMessage(err error, fallback string) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return fallback
}
