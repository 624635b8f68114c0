package repository

import (
	"context"

	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
)

// Filtros de estado del listado de usuarios.
const (
	UserStatusActive   = "activos"
	UserStatusInactive = "inactivos"
)

// UserFilter filtros del listado de usuarios. Search busca en username, nombre y email.
type UserFilter struct {
	Search string
	RoleID int64
	Status string
	Page   domain.Page
}

// UserRepository define el puerto de persistencia para User (DIP).
// GetByID y GetActiveByUsername devuelven (nil, nil) si no hay coincidencia.
type UserRepository interface {
	List(ctx context.Context, f UserFilter) ([]*entity.User, int, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetActiveByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsUsername(ctx context.Context, username string) (bool, error)
	// ExistsEmail ignora al usuario excludeID (0 para no excluir ninguno).
	ExistsEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetActive(ctx context.Context, id int64, active bool) error
	TouchLastAccess(ctx context.Context, id int64) error
	Stats(ctx context.Context, id int64) (*entity.UserStats, error)
}
