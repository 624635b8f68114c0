package postgres

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Record es una fila de resultado: nombre de columna -> valor devuelto por el driver.
type Record map[string]any

// String devuelve la columna como texto ("" si es NULL o no existe).
func (r Record) String(col string) string { return toString(r[col]) }

// Int64 devuelve la columna como entero (0 si es NULL).
func (r Record) Int64(col string) int64 { return toInt64(r[col]) }

// Int devuelve la columna como int (0 si es NULL).
func (r Record) Int(col string) int { return toInt(r[col]) }

// Int64Ptr devuelve nil si la columna es NULL.
func (r Record) Int64Ptr(col string) *int64 {
	if r[col] == nil {
		return nil
	}
	v := toInt64(r[col])
	return &v
}

// Bool interpreta booleanos, enteros 0/1 y texto "t"/"true".
func (r Record) Bool(col string) bool {
	switch v := r[col].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	case []byte:
		b, _ := strconv.ParseBool(string(v))
		return b
	default:
		return false
	}
}

// Decimal devuelve la columna NUMERIC como decimal (cero si es NULL o inválida).
func (r Record) Decimal(col string) decimal.Decimal {
	switch v := r[col].(type) {
	case decimal.Decimal:
		return v
	case string:
		d, _ := decimal.NewFromString(v)
		return d
	case []byte:
		d, _ := decimal.NewFromString(string(v))
		return d
	case float64:
		return decimal.NewFromFloat(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

// Time devuelve la columna como time.Time (cero si es NULL).
func (r Record) Time(col string) time.Time {
	if t := r.TimePtr(col); t != nil {
		return *t
	}
	return time.Time{}
}

// TimePtr devuelve nil si la columna es NULL.
func (r Record) TimePtr(col string) *time.Time {
	switch v := r[col].(type) {
	case time.Time:
		return &v
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return &t
		}
	}
	return nil
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

func toInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int32:
		return int64(t)
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		n, _ := strconv.ParseInt(t, 10, 64)
		return n
	case []byte:
		n, _ := strconv.ParseInt(string(t), 10, 64)
		return n
	case decimal.Decimal:
		return t.IntPart()
	default:
		return 0
	}
}

func toInt(v any) int { return int(toInt64(v)) }
