package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
)

// DashboardHandler tablero principal.
type DashboardHandler struct {
	*renderer
	uc dashboardService
}

func newDashboardHandler(r *renderer, uc dashboardService) *DashboardHandler {
	return &DashboardHandler{renderer: r, uc: uc}
}

// Index GET /dashboard/. Un fallo de la base muestra el tablero vacío con aviso.
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	data, err := h.uc.Get(c.UserContext(), perms(c))
	if err != nil {
		h.logError(c, err, "Error al cargar estadísticas")
		if data == nil {
			data = &dto.DashboardResponse{Error: "Error al cargar estadísticas"}
		}
	}
	return h.render(c, "dashboard/index", "Dashboard", fiber.Map{
		"Dashboard":   data,
		"PublicStats": dto.DashboardStatsPublic,
	})
}
