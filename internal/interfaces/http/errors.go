package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/pkg/logger"
)

// ErrorHandler responde los errores que escapan de los handlers: 404 de rutas
// inexistentes y fallos inesperados. Nunca expone el detalle interno.
func ErrorHandler(log *logger.Logger, appName string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error no controlado")
		}
		if wantsJSON(c) {
			return c.Status(code).JSON(dto.ErrorResponse{Code: strconv.Itoa(code), Message: errorTitle(code)})
		}
		name := "errors/500"
		if code == fiber.StatusNotFound {
			name = "errors/404"
		}
		c.Status(code)
		if rerr := c.Render(name, fiber.Map{
			"AppName":  appName,
			"Title":    errorTitle(code),
			"Identity": CurrentIdentity(c),
			"Perms":    perms(c),
		}, LayoutMain); rerr != nil {
			return c.Status(code).SendString(errorTitle(code))
		}
		return nil
	}
}

// wantsJSON indica si el cliente prefiere JSON sobre HTML según Accept.
func wantsJSON(c *fiber.Ctx) bool {
	if c.Get(fiber.HeaderAccept) == "" {
		return false
	}
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

func errorTitle(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return "Página no encontrada"
	case fiber.StatusForbidden:
		return "Acceso denegado"
	default:
		return "Error interno del servidor"
	}
}

// fail aplica la frontera de errores de los handlers HTML y redirige.
//   - ValidationError → mensaje al usuario, vuelve al formulario.
//   - ErrNotFound     → notFound, vuelve al listado.
//   - ErrSelfAction   → aviso, vuelve al listado.
//   - otro            → se registra y se muestra generic.
func (r *renderer) fail(c *fiber.Ctx, err error, back, list, notFound, generic string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		r.flash(c, dto.FlashError, domain.ValidationMessage(err, generic))
		return c.Redirect(back)
	case errors.Is(err, domain.ErrNotFound):
		r.flash(c, dto.FlashError, notFound)
		return c.Redirect(list)
	case errors.Is(err, domain.ErrSelfAction):
		r.flash(c, dto.FlashWarning, "No puedes modificar tu propio usuario")
		return c.Redirect(list)
	}
	r.logError(c, err, generic)
	r.flash(c, dto.FlashError, generic)
	return c.Redirect(back)
}

func (r *renderer) logError(c *fiber.Ctx, err error, msg string) {
	ev := r.log.Error().Err(err).Str("path", c.Path())
	var dbErr *domain.DatabaseError
	if errors.As(err, &dbErr) {
		ev = ev.Str("op", dbErr.Op)
	}
	if id := CurrentIdentity(c); id != nil {
		ev = ev.Str("user", id.Username)
	}
	ev.Msg(msg)
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
