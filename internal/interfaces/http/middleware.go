package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/sgi-guatemart/internal/application/auth"
	"github.com/jhoicas/sgi-guatemart/internal/infrastructure/postgres"
	"github.com/jhoicas/sgi-guatemart/pkg/logger"
	"github.com/jhoicas/sgi-guatemart/pkg/observability"
)

// HeaderRequestID cabecera con el identificador del request.
const HeaderRequestID = "X-Request-ID"

// RequestLogger asigna un request id y registra método, ruta, status, latencia y usuario.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev = ev.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start))
		if id := CurrentIdentity(c); id != nil {
			ev = ev.Str("user", id.Username)
		}
		ev.Msg("request")
		return err
	}
}

// Metrics registra cada request en Prometheus usando el patrón de ruta (no la URL concreta).
func Metrics(m *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		m.RecordHTTPRequest(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}

// DBScope abre el scope de conexión del request y lo libera al terminar, haya o no error.
// La conexión solo se toma del pool si algún handler llega a consultar la base.
func DBScope(db *postgres.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope := db.NewScope()
		defer func() { _ = scope.Release() }()
		c.SetUserContext(postgres.WithScope(c.UserContext(), scope))
		return c.Next()
	}
}

// LoadIdentity reconstruye la identidad desde la cookie de sesión.
// Una cookie inválida o expirada se borra y el request sigue como anónimo.
func LoadIdentity(sessions authService, cookies CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := cookies.SessionToken(c)
		if token == "" {
			return c.Next()
		}
		id, err := sessions.Authenticate(token)
		if err != nil {
			cookies.ClearSession(c)
			return c.Next()
		}
		c.Locals(LocalIdentity, id)
		c.SetUserContext(auth.WithIdentity(c.UserContext(), id))
		return c.Next()
	}
}
