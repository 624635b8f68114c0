package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
	"github.com/jhoicas/sgi-guatemart/internal/domain/repository"
	"github.com/jhoicas/sgi-guatemart/pkg/password"
)

const minUsernameLength = 3

// UserUseCase casos de uso de administración de usuarios.
// Un administrador no puede editar ni desactivar su propia cuenta (ErrSelfAction).
type UserUseCase struct {
	repo    repository.UserRepository
	catalog repository.CatalogRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, catalog repository.CatalogRepository) *UserUseCase {
	return &UserUseCase{repo: repo, catalog: catalog}
}

// List devuelve una página de usuarios con filtros de texto, rol y estado.
func (uc *UserUseCase) List(ctx context.Context, search, role, status, page string) (*dto.UserListResponse, error) {
	p := domain.NewPage(page)
	if status != repository.UserStatusActive && status != repository.UserStatusInactive {
		status = ""
	}
	f := repository.UserFilter{Search: search, RoleID: parseFilterID(role), Status: status, Page: p}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	roles, err := uc.catalog.Roles(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items:  items,
		Roles:  roleItems(roles),
		Page:   domain.NewPageInfo(p, total),
		Search: search,
		RoleID: f.RoleID,
		Status: status,
	}, nil
}

// Roles opciones del select de rol.
func (uc *UserUseCase) Roles(ctx context.Context) ([]dto.CatalogItem, error) {
	roles, err := uc.catalog.Roles(ctx)
	if err != nil {
		return nil, err
	}
	return roleItems(roles), nil
}

// Get devuelve el detalle del usuario con sus estadísticas de movimientos.
func (uc *UserUseCase) Get(ctx context.Context, id int64) (*dto.UserDetailResponse, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	stats, err := uc.repo.Stats(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.UserDetailResponse{User: toUserResponse(user)}
	if stats != nil {
		out.TotalMovements = stats.TotalMovements
		out.LastMovement = stats.LastMovement
	}
	roles, err := uc.catalog.Roles(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range roles {
		if r.ID == user.RoleID {
			out.RoleDescription = r.Description
		}
	}
	return out, nil
}

// GetEditable devuelve el usuario para el formulario de edición; el actor no puede editarse a sí mismo.
func (uc *UserUseCase) GetEditable(ctx context.Context, actorID, id int64) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.ID == actorID {
		return nil, domain.ErrSelfAction
	}
	out := toUserResponse(user)
	return &out, nil
}

// GetBasic devuelve el usuario sin comprobaciones adicionales (cambio de contraseña).
func (uc *UserUseCase) GetBasic(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// Create valida el formulario, comprueba unicidad de username y email y crea el usuario activo.
func (uc *UserUseCase) Create(ctx context.Context, in dto.UserCreateForm) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	fullName := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)
	if username == "" || in.Password == "" || fullName == "" || email == "" {
		return nil, domain.NewValidationError("", "Todos los campos son obligatorios")
	}
	if len([]rune(username)) < minUsernameLength {
		return nil, domain.NewValidationError("username", "El nombre de usuario debe tener al menos 3 caracteres")
	}
	if err := validateNewPassword(in.Password, in.PasswordConfirm); err != nil {
		return nil, err
	}
	roleID, err := parseID(in.RoleID, "id_rol", "Seleccione un rol válido")
	if err != nil {
		return nil, err
	}

	exists, err := uc.repo.ExistsUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewValidationError("username", "El nombre de usuario ya existe")
	}
	exists, err = uc.repo.ExistsEmail(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewValidationError("email", "El correo electrónico ya está registrado")
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		Email:        email,
		RoleID:       roleID,
		Active:       true,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewValidationError("username", "El nombre de usuario o el correo ya existen")
		}
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// Update modifica nombre, email, rol y estado de otro usuario.
func (uc *UserUseCase) Update(ctx context.Context, actorID, id int64, in dto.UserUpdateForm) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.ID == actorID {
		return nil, domain.ErrSelfAction
	}
	fullName := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)
	if fullName == "" || email == "" {
		return nil, domain.NewValidationError("", "El nombre y email son obligatorios")
	}
	roleID, err := parseID(in.RoleID, "id_rol", "Seleccione un rol válido")
	if err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsEmail(ctx, email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewValidationError("email", "El correo electrónico ya está registrado en otro usuario")
	}

	user.FullName = fullName
	user.Email = email
	user.RoleID = roleID
	user.Active = strings.TrimSpace(in.Active) != ""
	if err := uc.repo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewValidationError("email", "El correo electrónico ya está registrado en otro usuario")
		}
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// ChangePassword reemplaza el hash de la contraseña. Devuelve el username para el mensaje.
func (uc *UserUseCase) ChangePassword(ctx context.Context, id int64, in dto.PasswordForm) (string, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return "", err
	}
	if in.Password == "" || in.PasswordConfirm == "" {
		return "", domain.NewValidationError("password", "Debe ingresar la contraseña")
	}
	if err := validateNewPassword(in.Password, in.PasswordConfirm); err != nil {
		return "", err
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return "", err
	}
	if err := uc.repo.UpdatePassword(ctx, id, hash); err != nil {
		return "", err
	}
	return user.Username, nil
}

// ToggleActive invierte el estado activo de otro usuario y devuelve el resultado.
func (uc *UserUseCase) ToggleActive(ctx context.Context, actorID, id int64) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.ID == actorID {
		return nil, domain.ErrSelfAction
	}
	user.Active = !user.Active
	if err := uc.repo.SetActive(ctx, id, user.Active); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

func (uc *UserUseCase) find(ctx context.Context, id int64) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func validateNewPassword(plain, confirm string) error {
	if utf8.RuneCountInString(plain) < password.MinLength {
		return domain.NewValidationError("password", "La contraseña debe tener al menos 6 caracteres")
	}
	if len(plain) > password.MaxBytes {
		return domain.NewValidationError("password", "La contraseña es demasiado larga (máximo 72 bytes)")
	}
	if plain != confirm {
		return domain.NewValidationError("password_confirm", "Las contraseñas no coinciden")
	}
	return nil
}
