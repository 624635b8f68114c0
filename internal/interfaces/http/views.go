package http

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/domain/rbac"
	"github.com/jhoicas/sgi-guatemart/pkg/logger"
)

//go:embed views
var viewsFS embed.FS

// Layouts disponibles.
const (
	LayoutMain = "layouts/main"
	LayoutAuth = "layouts/auth"
)

// Guatemala usa coma de miles y punto decimal, igual que el inglés.
var printer = message.NewPrinter(language.English)

// NewViews construye el motor de plantillas embebidas con las funciones de formato.
func NewViews() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("views embebidas: " + err.Error())
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFuncMap(template.FuncMap{
		"moneda":   Money,
		"numero":   Number,
		"fecha":    func(v any) string { return formatTime(v, "02/01/2006 15:04") },
		"fechaDia": func(v any) string { return formatTime(v, "02/01/2006") },
		"selected": func(a, b any) bool { return fmt.Sprint(a) == fmt.Sprint(b) },
		"stat":     func(stats map[string]any, key string) any { return stats[key] },
		"pager":    pager,
	})
	return engine
}

// Money formatea un monto en quetzales: Q1,234.50. Acepta decimal, *decimal, string o número.
func Money(v any) string {
	d, ok := toDecimal(v)
	if !ok {
		return "-"
	}
	return printer.Sprintf("Q%.2f", d.InexactFloat64())
}

// Number formatea un entero o decimal con separador de miles.
func Number(v any) string {
	switch n := v.(type) {
	case int:
		return printer.Sprintf("%d", n)
	case int64:
		return printer.Sprintf("%d", n)
	}
	d, ok := toDecimal(v)
	if !ok {
		return "0"
	}
	if d.IsInteger() {
		return printer.Sprintf("%d", d.IntPart())
	}
	return printer.Sprintf("%.2f", d.InexactFloat64())
}

// pager arma los datos del paginador. kv son pares nombre/valor de los filtros
// activos que se conservan al cambiar de página; valores vacíos o cero se omiten.
func pager(page dto.PageInfo, kv ...any) map[string]any {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		v := fmt.Sprint(kv[i+1])
		if v == "" || v == "0" {
			continue
		}
		q.Set(fmt.Sprint(kv[i]), v)
	}
	query := ""
	if len(q) > 0 {
		query = "&" + q.Encode()
	}
	return map[string]any{"Page": page, "Query": template.URL(query)}
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, false
		}
		return *x, true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		return d, err == nil
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case float64:
		return decimal.NewFromFloat(x), true
	default:
		return decimal.Zero, false
	}
}

func formatTime(v any, layout string) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return "-"
		}
		return t.Format(layout)
	case *time.Time:
		if t == nil || t.IsZero() {
			return "-"
		}
		return t.Format(layout)
	default:
		return "-"
	}
}

// ── Render ────────────────────────────────────────────────────────────────────

// renderer agrupa lo que necesitan todos los handlers HTML: cookies, flash y logger.
type renderer struct {
	appName string
	cookies CookieConfig
	log     *logger.Logger
}

// render agrega a data la identidad, los permisos y los mensajes flash del request.
func (r *renderer) render(c *fiber.Ctx, name, title string, data fiber.Map, layout ...string) error {
	if data == nil {
		data = fiber.Map{}
	}
	id := CurrentIdentity(c)
	data["AppName"] = r.appName
	data["Title"] = title
	data["Identity"] = id
	data["Perms"] = id.Permissions()
	data["Flashes"] = r.cookies.ConsumeFlashes(c)
	data["Path"] = c.Path()
	if len(layout) == 0 {
		layout = []string{LayoutMain}
	}
	return c.Render(name, data, layout...)
}

func (r *renderer) forbidden(c *fiber.Ctx) error {
	c.Status(fiber.StatusForbidden)
	return r.render(c, "errors/403", "Acceso denegado", nil)
}

func (r *renderer) flash(c *fiber.Ctx, category, message string) {
	r.cookies.AddFlash(c, category, message)
}

// perms devuelve los permisos de la identidad del request.
func perms(c *fiber.Ctx) rbac.Permissions {
	return CurrentIdentity(c).Permissions()
}
