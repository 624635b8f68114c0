package dto

import "time"

// UserCreateForm formulario de alta de usuario. La contraseña se hashea en el caso de uso.
type UserCreateForm struct {
	Username        string `form:"username"`
	Password        string `form:"password"`
	PasswordConfirm string `form:"password_confirm"`
	FullName        string `form:"nombre_completo"`
	Email           string `form:"email"`
	RoleID          string `form:"id_rol"`
}

// UserUpdateForm formulario de edición. Username y contraseña no se editan aquí.
// Active es un checkbox: cualquier valor no vacío significa activo.
type UserUpdateForm struct {
	FullName string `form:"nombre_completo"`
	Email    string `form:"email"`
	RoleID   string `form:"id_rol"`
	Active   string `form:"activo"`
}

// PasswordForm formulario de cambio de contraseña.
type PasswordForm struct {
	Password        string `form:"password"`
	PasswordConfirm string `form:"password_confirm"`
}

// LoginForm formulario de inicio de sesión.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         int64      `json:"id_usuario"`
	Username   string     `json:"username"`
	FullName   string     `json:"nombre_completo"`
	Email      string     `json:"email"`
	RoleID     int64      `json:"id_rol"`
	RoleName   string     `json:"nombre_rol"`
	Active     bool       `json:"activo"`
	CreatedAt  time.Time  `json:"fecha_creacion"`
	UpdatedAt  *time.Time `json:"fecha_modificacion"`
	LastAccess *time.Time `json:"ultimo_acceso"`
}

// UserListResponse lista paginada de usuarios con los filtros aplicados.
type UserListResponse struct {
	Items  []UserResponse `json:"items"`
	Roles  []CatalogItem  `json:"roles"`
	Page   PageInfo       `json:"page"`
	Search string         `json:"q"`
	RoleID int64          `json:"rol"`
	Status string         `json:"estado"`
}

// UserDetailResponse usuario con su actividad en movimientos.
type UserDetailResponse struct {
	User            UserResponse `json:"usuario"`
	RoleDescription string       `json:"descripcion_rol"`
	TotalMovements  int          `json:"total_movimientos"`
	LastMovement    *time.Time   `json:"ultimo_movimiento"`
}
