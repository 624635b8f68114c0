package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sgi-guatemart/internal/application/auth"
	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/domain/rbac"
)

// LocalIdentity clave de c.Locals con la identidad autenticada.
const LocalIdentity = "identity"

// Outcome resultado de evaluar el acceso a una ruta protegida.
type Outcome int

const (
	Authorized Outcome = iota
	Unauthenticated
	Forbidden
)

// GuardResult es el resultado de Guard. Identity solo está presente si Outcome es Authorized.
type GuardResult struct {
	Outcome  Outcome
	Identity *auth.Identity
}

// Guard evalúa primero la autenticación y después cada capacidad requerida.
// Sin capacidades basta con tener sesión.
func Guard(id *auth.Identity, caps ...rbac.Capability) GuardResult {
	if id == nil {
		return GuardResult{Outcome: Unauthenticated}
	}
	perms := id.Permissions()
	for _, c := range caps {
		if !perms.Allows(c) {
			return GuardResult{Outcome: Forbidden}
		}
	}
	return GuardResult{Outcome: Authorized, Identity: id}
}

// CurrentIdentity devuelve la identidad del request o nil si es anónimo.
func CurrentIdentity(c *fiber.Ctx) *auth.Identity {
	id, _ := c.Locals(LocalIdentity).(*auth.Identity)
	return id
}

// Require protege rutas HTML: sin sesión redirige al login con aviso; sin permiso responde 403.
func (r *renderer) Require(caps ...rbac.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch Guard(CurrentIdentity(c), caps...).Outcome {
		case Unauthenticated:
			r.cookies.AddFlash(c, dto.FlashWarning, "Debe iniciar sesión para acceder")
			return c.Redirect("/auth/login")
		case Forbidden:
			return r.forbidden(c)
		}
		return c.Next()
	}
}

// RequireJSON protege rutas JSON: 401 sin sesión y 403 sin permiso.
func RequireJSON(caps ...rbac.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch Guard(CurrentIdentity(c), caps...).Outcome {
		case Unauthenticated:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "Debe iniciar sesión para acceder",
			})
		case Forbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "No tiene permisos para acceder a esta sección",
			})
		}
		return c.Next()
	}
}
