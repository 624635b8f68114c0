package http

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
)

// Nombres de cookie por defecto.
const (
	SessionCookieName = "sgi_session"
	FlashCookieName   = "sgi_flash"
)

const localPendingFlashes = "pending_flashes"

// CookieConfig parámetros comunes de las cookies de sesión y flash.
type CookieConfig struct {
	SessionName string
	Secure      bool
	Lifetime    time.Duration
}

func (cc CookieConfig) sessionName() string {
	if cc.SessionName == "" {
		return SessionCookieName
	}
	return cc.SessionName
}

func (cc CookieConfig) cookie(name, value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   cc.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// SetSession escribe la cookie de sesión firmada.
func (cc CookieConfig) SetSession(c *fiber.Ctx, token string) {
	c.Cookie(cc.cookie(cc.sessionName(), token, time.Now().Add(cc.Lifetime)))
}

// ClearSession expira la cookie de sesión.
func (cc CookieConfig) ClearSession(c *fiber.Ctx) {
	c.Cookie(cc.cookie(cc.sessionName(), "", time.Unix(0, 0)))
}

// SessionToken lee el token de la cookie de sesión.
func (cc CookieConfig) SessionToken(c *fiber.Ctx) string {
	return c.Cookies(cc.sessionName())
}

// ── Flash ─────────────────────────────────────────────────────────────────────

// AddFlash agrega un mensaje que se mostrará en la siguiente página renderizada.
// Los mensajes se acumulan durante el request y se escriben en una sola cookie.
func (cc CookieConfig) AddFlash(c *fiber.Ctx, category, message string) {
	pending, _ := c.Locals(localPendingFlashes).([]dto.Flash)
	pending = append(pending, dto.Flash{Category: category, Message: message})
	c.Locals(localPendingFlashes, pending)
	c.Cookie(cc.cookie(FlashCookieName, encodeFlashes(pending), time.Now().Add(5*time.Minute)))
}

// ConsumeFlashes devuelve los mensajes pendientes y borra la cookie.
// Incluye los agregados en el request actual (formularios re-renderizados).
func (cc CookieConfig) ConsumeFlashes(c *fiber.Ctx) []dto.Flash {
	flashes := decodeFlashes(c.Cookies(FlashCookieName))
	if pending, ok := c.Locals(localPendingFlashes).([]dto.Flash); ok {
		flashes = append(flashes, pending...)
		c.Locals(localPendingFlashes, nil)
	}
	if len(flashes) > 0 {
		c.Cookie(cc.cookie(FlashCookieName, "", time.Unix(0, 0)))
	}
	return flashes
}

func encodeFlashes(flashes []dto.Flash) string {
	raw, err := json.Marshal(flashes)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeFlashes(value string) []dto.Flash {
	if value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var flashes []dto.Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}
