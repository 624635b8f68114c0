package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/pkg/observability"
)

const (
	movementsURL = "/movimientos/"
	registerURL  = "/movimientos/registrar"
	alertsURL    = "/movimientos/alertas"
)

// MovementHandler historial y registro de movimientos, y alertas de stock.
type MovementHandler struct {
	*renderer
	uc      movementService
	alerts  alertService
	metrics *observability.Metrics
}

func newMovementHandler(r *renderer, uc movementService, alerts alertService, m *observability.Metrics) *MovementHandler {
	return &MovementHandler{renderer: r, uc: uc, alerts: alerts, metrics: m}
}

// List GET /movimientos/?q=&tipo=&page=
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("q"), c.Query("tipo"), c.Query("page"))
	if err != nil {
		h.logError(c, err, "Error al cargar movimientos")
		h.flash(c, dto.FlashError, "Error al cargar movimientos")
		out = &dto.MovementListResponse{Search: c.Query("q")}
	}
	return h.render(c, "movimientos/listar", "Movimientos", fiber.Map{"List": out})
}

// RegisterForm GET /movimientos/registrar
func (h *MovementHandler) RegisterForm(c *fiber.Ctx) error {
	data, err := h.uc.FormData(c.UserContext())
	if err != nil {
		h.logError(c, err, "Error al cargar catálogos")
		h.flash(c, dto.FlashError, "Error al cargar productos y tipos de movimiento")
		data = &dto.MovementFormData{}
	}
	return h.render(c, "movimientos/registrar", "Registrar movimiento", fiber.Map{
		"Data":      data,
		"ProductID": c.Query("producto"),
	})
}

// Register POST /movimientos/registrar. El procedimiento almacenado valida stock y genera alertas.
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var form dto.MovementForm
	if err := c.BodyParser(&form); err != nil {
		h.flash(c, dto.FlashError, "Formulario inválido")
		return c.Redirect(registerURL)
	}
	id := CurrentIdentity(c)
	_, err := h.uc.Register(c.UserContext(), id.UserID, form)
	h.metrics.RecordMovement(err)
	if err != nil {
		return h.fail(c, err, registerURL, movementsURL, "Producto no encontrado", "Error al registrar movimiento")
	}
	h.flash(c, dto.FlashSuccess, "Movimiento registrado exitosamente")
	return c.Redirect(movementsURL)
}

// Alerts GET /movimientos/alertas. Visible para todos los roles; resolver requiere permiso.
func (h *MovementHandler) Alerts(c *fiber.Ctx) error {
	list, err := h.alerts.Pending(c.UserContext())
	if err != nil {
		h.logError(c, err, "Error al cargar alertas")
		h.flash(c, dto.FlashError, "Error al cargar alertas")
	}
	return h.render(c, "movimientos/alertas", "Alertas de stock", fiber.Map{"Alerts": list})
}

// Resolve POST /movimientos/alertas/:id/resolver. Una alerta ya resuelta se reporta como no encontrada.
func (h *MovementHandler) Resolve(c *fiber.Ctx) error {
	alertID, ok := paramID(c)
	if !ok {
		return fiber.ErrNotFound
	}
	id := CurrentIdentity(c)
	if err := h.alerts.Resolve(c.UserContext(), id.UserID, alertID); err != nil {
		return h.fail(c, err, alertsURL, alertsURL, "Alerta no encontrada o ya resuelta", "Error al resolver alerta")
	}
	h.metrics.AlertsResolvedTotal.Inc()
	h.flash(c, dto.FlashSuccess, "Alerta resuelta exitosamente")
	return c.Redirect(alertsURL)
}

// Report GET /movimientos/alertas/reporte.pdf
func (h *MovementHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.alerts.Report(c.UserContext())
	if err != nil {
		h.logError(c, err, "Error al generar reporte")
		h.flash(c, dto.FlashError, "Error al generar el reporte de alertas")
		return c.Redirect(alertsURL)
	}
	h.metrics.ReportsGeneratedTotal.Inc()
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		`attachment; filename="alertas_stock_`+time.Now().Format("20060102_1504")+`.pdf"`)
	return c.Send(pdf)
}
