package usecase

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sgi-guatemart/internal/domain"
)

// parseID interpreta un id obligatorio de un select; vacío o no positivo es inválido.
func parseID(raw, field, message string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(field, message)
	}
	return id, nil
}

// parseOptionalID devuelve nil para un select vacío.
func parseOptionalID(raw, field, message string) (*int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := parseID(raw, field, message)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseFilterID ignora valores de filtro no numéricos en lugar de fallar.
func parseFilterID(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// parseQuantity interpreta un entero no negativo; vacío es 0.
func parseQuantity(raw, field, message string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(field, message)
	}
	return n, nil
}

// parsePrice interpreta un precio no negativo; vacío es 0. Acepta coma decimal.
func parsePrice(raw, field, message string) (decimal.Decimal, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero, domain.NewValidationError(field, message)
	}
	return d, nil
}
