package domain

import (
	"strconv"
	"strings"
)

// PerPage es el tamaño fijo de página de todos los listados.
const PerPage = 20

// MaxPage acota el número de página para que el OFFSET no desborde.
const MaxPage = 1_000_000

// Page es una página 1-based de un listado.
type Page struct {
	Number int
}

// NewPage interpreta el parámetro ?page=. Vacío, no numérico o menor que 1 equivale a 1;
// valores mayores que MaxPage se recortan a MaxPage.
func NewPage(raw string) Page {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		n = 1
	}
	if n > MaxPage {
		n = MaxPage
	}
	return Page{Number: n}
}

// Offset devuelve el desplazamiento SQL de la página.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	if p.Number > MaxPage {
		return (MaxPage - 1) * PerPage
	}
	return (p.Number - 1) * PerPage
}

// Limit devuelve el tamaño de página.
func (p Page) Limit() int { return PerPage }

// TotalPages calcula ceil(total / PerPage). Cero registros es cero páginas.
func TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PerPage - 1) / PerPage
}

// PageInfo agrupa los datos de paginación que consumen las plantillas.
type PageInfo struct {
	Page       int
	TotalPages int
	Total      int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

// NewPageInfo construye la paginación para una página y un total de registros.
func NewPageInfo(p Page, total int) PageInfo {
	pages := TotalPages(total)
	return PageInfo{
		Page:       p.Number,
		TotalPages: pages,
		Total:      total,
		HasPrev:    p.Number > 1,
		HasNext:    p.Number < pages,
		PrevPage:   p.Number - 1,
		NextPage:   p.Number + 1,
	}
}
