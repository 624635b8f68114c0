package http

import (
	"html/template"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
)

func TestMoney(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"decimal", decimal.RequireFromString("1234.5"), "Q1,234.50"},
		{"string", "1234567.891", "Q1,234,567.89"},
		{"entero", 15, "Q15.00"},
		{"cero", decimal.Zero, "Q0.00"},
		{"puntero nulo", (*decimal.Decimal)(nil), "-"},
		{"texto inválido", "abc", "-"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Money(tc.in))
		})
	}
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "12,500", Number(12500))
	assert.Equal(t, "12,500", Number(int64(12500)))
	assert.Equal(t, "3", Number(decimal.NewFromInt(3)))
	assert.Equal(t, "2.50", Number("2.5"))
	assert.Equal(t, "0", Number(nil))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024 14:07", formatTime(ts, "02/01/2006 15:04"))
	assert.Equal(t, "05/03/2024", formatTime(&ts, "02/01/2006"))
	assert.Equal(t, "-", formatTime((*time.Time)(nil), "02/01/2006"))
	assert.Equal(t, "-", formatTime(time.Time{}, "02/01/2006"))
}

func TestPager_ConservaFiltrosActivos(t *testing.T) {
	page := dto.PageInfo{Page: 2, TotalPages: 3}
	got := pager(page, "q", "arroz fino", "categoria", 0, "marca", "")

	assert.Equal(t, page, got["Page"])
	assert.Equal(t, template.URL("&q=arroz+fino"), got["Query"])

	assert.Equal(t, template.URL(""), pager(page)["Query"], "sin filtros no hay query")
}

func TestFlashCookie(t *testing.T) {
	in := []dto.Flash{
		{Category: dto.FlashSuccess, Message: "Producto Café 500g creado exitosamente"},
		{Category: dto.FlashWarning, Message: "Stock bajo"},
	}
	assert.Equal(t, in, decodeFlashes(encodeFlashes(in)))
	assert.Nil(t, decodeFlashes(""))
	assert.Nil(t, decodeFlashes("%%no-base64%%"))
}
