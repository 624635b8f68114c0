package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/domain"
)

const usersURL = "/usuarios/"

// UserHandler administración de usuarios. Todas las rutas requieren CapManageUsers.
type UserHandler struct {
	*renderer
	uc userService
}

func newUserHandler(r *renderer, uc userService) *UserHandler {
	return &UserHandler{renderer: r, uc: uc}
}

// List GET /usuarios/?q=&rol=&estado=&page=
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("q"), c.Query("rol"), c.Query("estado"), c.Query("page"))
	if err != nil {
		h.logError(c, err, "Error al cargar usuarios")
		h.flash(c, dto.FlashError, "Error al cargar usuarios")
		out = &dto.UserListResponse{Search: c.Query("q")}
	}
	return h.render(c, "usuarios/listar", "Usuarios", fiber.Map{"List": out})
}

// View GET /usuarios/:id/ver
func (h *UserHandler) View(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fiber.ErrNotFound
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, usersURL, usersURL, "Usuario no encontrado", "Error al cargar usuario")
	}
	return h.render(c, "usuarios/ver", out.User.FullName, fiber.Map{"Detail": out})
}

// CreateForm GET /usuarios/crear
func (h *UserHandler) CreateForm(c *fiber.Ctx) error {
	roles, err := h.uc.Roles(c.UserContext())
	if err != nil {
		h.logError(c, err, "Error al cargar roles")
		h.flash(c, dto.FlashError, "Error al cargar roles")
	}
	return h.render(c, "usuarios/crear", "Nuevo usuario", fiber.Map{"Roles": roles})
}

// Create POST /usuarios/crear
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var form dto.UserCreateForm
	if err := c.BodyParser(&form); err != nil {
		h.flash(c, dto.FlashError, "Formulario inválido")
		return c.Redirect("/usuarios/crear")
	}
	out, err := h.uc.Create(c.UserContext(), form)
	if err != nil {
		return h.fail(c, err, "/usuarios/crear", usersURL, "Usuario no encontrado", "Error al crear usuario")
	}
	h.log.Info().Str("user", CurrentIdentity(c).Username).Str("nuevo", out.Username).Msg("usuario creado")
	h.flash(c, dto.FlashSuccess, "Usuario "+out.Username+" creado exitosamente")
	return c.Redirect(usersURL)
}

// EditForm GET /usuarios/:id/editar. Un administrador no puede editarse a sí mismo.
func (h *UserHandler) EditForm(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fiber.ErrNotFound
	}
	user, err := h.uc.GetEditable(c.UserContext(), CurrentIdentity(c).UserID, id)
	if err != nil {
		return h.selfOrFail(c, err, "No puedes editar tu propio usuario", usersURL, "Error al cargar usuario")
	}
	roles, err := h.uc.Roles(c.UserContext())
	if err != nil {
		h.logError(c, err, "Error al cargar roles")
		h.flash(c, dto.FlashError, "Error al cargar roles")
	}
	return h.render(c, "usuarios/editar", "Editar usuario", fiber.Map{"User": user, "Roles": roles})
}

// Update POST /usuarios/:id/editar
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fiber.ErrNotFound
	}
	var form dto.UserUpdateForm
	if err := c.BodyParser(&form); err != nil {
		h.flash(c, dto.FlashError, "Formulario inválido")
		return c.Redirect(userURL(id, "editar"))
	}
	if _, err := h.uc.Update(c.UserContext(), CurrentIdentity(c).UserID, id, form); err != nil {
		return h.selfOrFail(c, err, "No puedes editar tu propio usuario", userURL(id, "editar"), "Error al actualizar usuario")
	}
	h.flash(c, dto.FlashSuccess, "Usuario actualizado exitosamente")
	return c.Redirect(usersURL)
}

// PasswordForm GET /usuarios/:id/cambiar-password
func (h *UserHandler) PasswordForm(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fiber.ErrNotFound
	}
	user, err := h.uc.GetBasic(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, usersURL, usersURL, "Usuario no encontrado", "Error al cargar usuario")
	}
	return h.render(c, "usuarios/cambiar_password", "Cambiar contraseña", fiber.Map{"User": user})
}

// ChangePassword POST /usuarios/:id/cambiar-password
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fiber.ErrNotFound
	}
	var form dto.PasswordForm
	if err := c.BodyParser(&form); err != nil {
		h.flash(c, dto.FlashError, "Formulario inválido")
		return c.Redirect(userURL(id, "cambiar-password"))
	}
	username, err := h.uc.ChangePassword(c.UserContext(), id, form)
	if err != nil {
		return h.fail(c, err, userURL(id, "cambiar-password"), usersURL, "Usuario no encontrado", "Error al cambiar contraseña")
	}
	h.flash(c, dto.FlashSuccess, "Contraseña actualizada para "+username)
	return c.Redirect(usersURL)
}

// ToggleActive POST /usuarios/:id/toggle-estado
func (h *UserHandler) ToggleActive(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fiber.ErrNotFound
	}
	user, err := h.uc.ToggleActive(c.UserContext(), CurrentIdentity(c).UserID, id)
	if err != nil {
		return h.selfOrFail(c, err, "No puedes desactivar tu propio usuario", usersURL, "Error al cambiar estado del usuario")
	}
	state := "desactivado"
	if user.Active {
		state = "activado"
	}
	h.flash(c, dto.FlashSuccess, "Usuario "+user.Username+" "+state+" exitosamente")
	return c.Redirect(usersURL)
}

// selfOrFail traduce ErrSelfAction al aviso propio de la acción; el resto va a fail.
func (h *UserHandler) selfOrFail(c *fiber.Ctx, err error, selfMsg, back, generic string) error {
	if errors.Is(err, domain.ErrSelfAction) {
		h.flash(c, dto.FlashWarning, selfMsg)
		return c.Redirect(usersURL)
	}
	return h.fail(c, err, back, usersURL, "Usuario no encontrado", generic)
}

func userURL(id int64, action string) string {
	return "/usuarios/" + strconv.FormatInt(id, 10) + "/" + action
}
