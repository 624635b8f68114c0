package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/sgi-guatemart/internal/domain"
)

// ListQuery arma las consultas de listado: una consulta base, predicados en orden
// con sus parámetros, ordenamiento y paginación. Todo valor de usuario viaja como
// parámetro posicional ($n); nunca se concatena en el SQL.
//
// La consulta base no debe tener WHERE: los predicados se unen con AND tras un WHERE
// que ListQuery agrega solo si hay al menos uno.
type ListQuery struct {
	selectSQL string
	countSQL  string
	preds     []predicate
	orderBy   string
	page      *domain.Page
}

// predicate renderiza un fragmento SQL; bind registra un argumento y devuelve su placeholder.
type predicate func(bind func(any) string) string

// NewListQuery construye el builder con la consulta de filas y la de conteo.
func NewListQuery(selectSQL, countSQL string) *ListQuery {
	return &ListQuery{selectSQL: selectSQL, countSQL: countSQL}
}

// Where agrega un predicado fijo sin parámetros (no debe contener datos de usuario).
func (q *ListQuery) Where(clause string) *ListQuery {
	q.preds = append(q.preds, func(func(any) string) string { return clause })
	return q
}

// Search agrega una búsqueda ILIKE '%term%' sobre las columnas, unidas con OR.
// Un término vacío o solo espacios no agrega ningún predicado.
func (q *ListQuery) Search(term string, columns ...string) *ListQuery {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return q
	}
	pattern := "%" + escapeLike(term) + "%"
	q.preds = append(q.preds, func(bind func(any) string) string {
		ph := bind(pattern)
		parts := make([]string, len(columns))
		for i, c := range columns {
			parts[i] = c + " ILIKE " + ph
		}
		return "(" + strings.Join(parts, " OR ") + ")"
	})
	return q
}

// Equal agrega column = valor.
func (q *ListQuery) Equal(column string, value any) *ListQuery {
	q.preds = append(q.preds, func(bind func(any) string) string {
		return column + " = " + bind(value)
	})
	return q
}

// OrderBy fija el ORDER BY (expresión constante).
func (q *ListQuery) OrderBy(expr string) *ListQuery {
	q.orderBy = expr
	return q
}

// Paginate limita la consulta a la página indicada.
func (q *ListQuery) Paginate(p domain.Page) *ListQuery {
	q.page = &p
	return q
}

// Build devuelve la consulta de filas y sus argumentos.
func (q *ListQuery) Build() (string, []any) {
	var args []any
	bind := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	var sb strings.Builder
	sb.WriteString(q.selectSQL)
	q.writeWhere(&sb, bind)
	if q.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.orderBy)
	}
	if q.page != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(bind(q.page.Limit()))
		sb.WriteString(" OFFSET ")
		sb.WriteString(bind(q.page.Offset()))
	}
	return sb.String(), args
}

// BuildCount devuelve la consulta de conteo con los mismos predicados, sin orden ni paginación.
func (q *ListQuery) BuildCount() (string, []any) {
	var args []any
	bind := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	var sb strings.Builder
	sb.WriteString(q.countSQL)
	q.writeWhere(&sb, bind)
	return sb.String(), args
}

func (q *ListQuery) writeWhere(sb *strings.Builder, bind func(any) string) {
	for i, p := range q.preds {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(p(bind))
	}
}
