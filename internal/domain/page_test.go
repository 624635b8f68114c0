package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sgi-guatemart/internal/domain"
)

func TestNewPage_ValoresInvalidosUsanPrimeraPagina(t *testing.T) {
	for _, raw := range []string{"", "abc", "0", "-3", " "} {
		assert.Equal(t, 1, domain.NewPage(raw).Number, "page=%q debe normalizarse a 1", raw)
	}
	assert.Equal(t, 4, domain.NewPage("4").Number)
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, domain.NewPage("1").Offset())
	assert.Equal(t, 20, domain.NewPage("2").Offset())
	assert.Equal(t, 60, domain.NewPage("4").Offset())
}

func TestPage_NumeroEnormeNoDesbordaOffset(t *testing.T) {
	p := domain.NewPage("922337203685477581")
	assert.Equal(t, domain.MaxPage, p.Number)
	assert.Equal(t, (domain.MaxPage-1)*domain.PerPage, p.Offset())
	assert.GreaterOrEqual(t, p.Offset(), 0)

	assert.Equal(t, 1, domain.NewPage("99999999999999999999999").Number, "fuera de rango de int se trata como inválido")
	assert.GreaterOrEqual(t, domain.Page{Number: int(^uint(0) >> 1)}.Offset(), 0)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, domain.TotalPages(0))
	assert.Equal(t, 1, domain.TotalPages(1))
	assert.Equal(t, 1, domain.TotalPages(20))
	assert.Equal(t, 2, domain.TotalPages(21))
	assert.Equal(t, 3, domain.TotalPages(45))
}

func TestNewPageInfo_Navegacion(t *testing.T) {
	info := domain.NewPageInfo(domain.NewPage("2"), 45)
	assert.Equal(t, 3, info.TotalPages)
	assert.True(t, info.HasPrev)
	assert.True(t, info.HasNext)
	assert.Equal(t, 1, info.PrevPage)
	assert.Equal(t, 3, info.NextPage)

	last := domain.NewPageInfo(domain.NewPage("3"), 45)
	assert.False(t, last.HasNext)
}
