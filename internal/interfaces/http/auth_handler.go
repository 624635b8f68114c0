package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/pkg/observability"
)

// AuthHandler inicio y cierre de sesión.
type AuthHandler struct {
	*renderer
	uc      authService
	metrics *observability.Metrics
}

// newAuthHandler construye el handler.
func newAuthHandler(r *renderer, uc authService, m *observability.Metrics) *AuthHandler {
	return &AuthHandler{renderer: r, uc: uc, metrics: m}
}

// LoginForm GET /auth/login. Con sesión activa redirige al dashboard.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if CurrentIdentity(c) != nil {
		return c.Redirect("/dashboard/")
	}
	return h.render(c, "auth/login", "Iniciar sesión", fiber.Map{"Username": ""}, LayoutAuth)
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if CurrentIdentity(c) != nil {
		return c.Redirect("/dashboard/")
	}
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		h.flash(c, dto.FlashError, "Por favor ingrese usuario y contraseña")
		return h.render(c, "auth/login", "Iniciar sesión", fiber.Map{"Username": ""}, LayoutAuth)
	}

	res, err := h.uc.Login(c.UserContext(), form.Username, form.Password)
	if err != nil {
		h.metrics.RecordLogin(false)
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.flash(c, dto.FlashError, domain.ValidationMessage(err, "Por favor ingrese usuario y contraseña"))
		case errors.Is(err, domain.ErrUnauthorized):
			h.flash(c, dto.FlashError, "Usuario o contraseña incorrectos")
		default:
			h.logError(c, err, "login")
			h.flash(c, dto.FlashError, "Error al iniciar sesión, intente más tarde")
		}
		return h.render(c, "auth/login", "Iniciar sesión", fiber.Map{"Username": form.Username}, LayoutAuth)
	}

	h.metrics.RecordLogin(true)
	h.cookies.SetSession(c, res.Token)
	h.log.Info().Str("user", res.Identity.Username).Str("rol", res.Identity.RoleName).Msg("inicio de sesión")
	h.flash(c, dto.FlashSuccess, "Bienvenido "+res.Identity.DisplayName+"!")
	return c.Redirect("/dashboard/")
}

// Logout GET /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	name := "Usuario"
	if id := CurrentIdentity(c); id != nil {
		name = id.DisplayName
	}
	h.cookies.ClearSession(c)
	h.flash(c, dto.FlashInfo, "Hasta luego "+name+"!")
	return c.Redirect("/auth/login")
}
