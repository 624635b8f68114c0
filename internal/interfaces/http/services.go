package http

import (
	"context"
	"time"

	"github.com/jhoicas/sgi-guatemart/internal/application/auth"
	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/domain/rbac"
)

// Contratos que consumen los handlers. Los implementan los casos de uso de
// internal/application; los tests usan dobles en memoria.

type authService interface {
	Login(ctx context.Context, username, plain string) (*auth.LoginResult, error)
	Authenticate(token string) (*auth.Identity, error)
	Lifetime() time.Duration
}

type dashboardService interface {
	Get(ctx context.Context, perms rbac.Permissions) (*dto.DashboardResponse, error)
}

type productService interface {
	List(ctx context.Context, perms rbac.Permissions, search, page string) (*dto.ProductListResponse, error)
	Get(ctx context.Context, perms rbac.Permissions, id int64) (*dto.ProductDetailResponse, error)
	FormData(ctx context.Context) (*dto.ProductFormData, error)
	Create(ctx context.Context, in dto.ProductForm) (*dto.ProductResponse, error)
	Update(ctx context.Context, id int64, in dto.ProductForm) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id int64) error
}

type barcodeService interface {
	Search(ctx context.Context, code string) *dto.BarcodeResponse
}

type movementService interface {
	List(ctx context.Context, search, typeID, page string) (*dto.MovementListResponse, error)
	FormData(ctx context.Context) (*dto.MovementFormData, error)
	Register(ctx context.Context, userID int64, in dto.MovementForm) (*dto.MovementResultResponse, error)
}

type alertService interface {
	Pending(ctx context.Context) ([]dto.AlertResponse, error)
	Resolve(ctx context.Context, userID, id int64) error
	Report(ctx context.Context) ([]byte, error)
}

type userService interface {
	List(ctx context.Context, search, role, status, page string) (*dto.UserListResponse, error)
	Roles(ctx context.Context) ([]dto.CatalogItem, error)
	Get(ctx context.Context, id int64) (*dto.UserDetailResponse, error)
	GetEditable(ctx context.Context, actorID, id int64) (*dto.UserResponse, error)
	GetBasic(ctx context.Context, id int64) (*dto.UserResponse, error)
	Create(ctx context.Context, in dto.UserCreateForm) (*dto.UserResponse, error)
	Update(ctx context.Context, actorID, id int64, in dto.UserUpdateForm) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, id int64, in dto.PasswordForm) (string, error)
	ToggleActive(ctx context.Context, actorID, id int64) (*dto.UserResponse, error)
}

// Pinger verifica la conectividad de la base para /health.
type Pinger interface {
	Ping(ctx context.Context) error
}
