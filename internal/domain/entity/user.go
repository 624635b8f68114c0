package entity

import "time"

// Role es un rol almacenado. NombreRol es la única clave para derivar permisos.
type Role struct {
	ID          int64
	Name        string
	Description string
}

// User representa una cuenta del sistema. Cada usuario tiene exactamente un rol.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt; la contraseña en claro nunca se persiste
	FullName     string
	Email        string
	RoleID       int64
	RoleName     string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	LastAccess   *time.Time
}

// UserStats resume la actividad de un usuario en movimientos.
type UserStats struct {
	TotalMovements int
	LastMovement   *time.Time
}
