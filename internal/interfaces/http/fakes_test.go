package http_test

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/sgi-guatemart/internal/application/auth"
	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/rbac"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de los casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakeAuth struct {
	sessions map[string]*auth.Identity
	users    map[string]string // username -> password
}

func (f *fakeAuth) Login(_ context.Context, username, plain string) (*auth.LoginResult, error) {
	if username == "" || plain == "" {
		return nil, domain.NewValidationError("username", "Por favor ingrese usuario y contraseña")
	}
	if f.users[username] != plain {
		return nil, domain.ErrUnauthorized
	}
	for token, id := range f.sessions {
		if id.Username == username {
			return &auth.LoginResult{Token: token, Identity: id}, nil
		}
	}
	return nil, domain.ErrUnauthorized
}

func (f *fakeAuth) Authenticate(token string) (*auth.Identity, error) {
	id, ok := f.sessions[token]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return id, nil
}

func (f *fakeAuth) Lifetime() time.Duration { return time.Hour }

type fakeDashboard struct{}

func (fakeDashboard) Get(_ context.Context, perms rbac.Permissions) (*dto.DashboardResponse, error) {
	return &dto.DashboardResponse{
		Stats:          map[string]any{"total_productos": int64(3)},
		CanViewFinance: perms.ViewPrices,
	}, nil
}

type fakeProducts struct {
	skus    map[string]bool
	creates int
}

func (f *fakeProducts) List(_ context.Context, _ rbac.Permissions, search, _ string) (*dto.ProductListResponse, error) {
	return &dto.ProductListResponse{Search: search}, nil
}

func (f *fakeProducts) Get(_ context.Context, _ rbac.Permissions, id int64) (*dto.ProductDetailResponse, error) {
	if id != 1 {
		return nil, domain.ErrNotFound
	}
	return &dto.ProductDetailResponse{Product: dto.ProductResponse{ID: 1, SKU: "X1", Name: "Arroz"}}, nil
}

func (f *fakeProducts) FormData(context.Context) (*dto.ProductFormData, error) {
	return &dto.ProductFormData{}, nil
}

func (f *fakeProducts) Create(_ context.Context, in dto.ProductForm) (*dto.ProductResponse, error) {
	if f.skus[in.SKU] {
		return nil, domain.NewValidationError("sku", "El SKU ya existe")
	}
	f.creates++
	f.skus[in.SKU] = true
	return &dto.ProductResponse{ID: int64(f.creates), SKU: in.SKU, Name: in.Name}, nil
}

func (f *fakeProducts) Update(_ context.Context, id int64, in dto.ProductForm) (*dto.ProductResponse, error) {
	return &dto.ProductResponse{ID: id, Name: in.Name}, nil
}

func (f *fakeProducts) Delete(_ context.Context, id int64) error {
	if id != 1 {
		return domain.ErrNotFound
	}
	return nil
}

type fakeBarcode struct{}

func (fakeBarcode) Search(_ context.Context, code string) *dto.BarcodeResponse {
	switch code {
	case "7501055363278":
		return &dto.BarcodeResponse{
			Success: true,
			Data:    &dto.BarcodeProductData{Name: "Coca-Cola 600ml", Barcode: code, Source: "Open Food Facts"},
			Message: "Producto encontrado en Open Food Facts",
		}
	case "12345678":
		return &dto.BarcodeResponse{Message: "Producto no encontrado. Puedes ingresar los datos manualmente."}
	default:
		return &dto.BarcodeResponse{Error: "Código de barras inválido. Debe tener 8, 12, 13 o 14 dígitos."}
	}
}

type fakeMovements struct{}

func (fakeMovements) List(_ context.Context, search, _, _ string) (*dto.MovementListResponse, error) {
	return &dto.MovementListResponse{Search: search}, nil
}

func (fakeMovements) FormData(context.Context) (*dto.MovementFormData, error) {
	return &dto.MovementFormData{}, nil
}

func (fakeMovements) Register(_ context.Context, _ int64, in dto.MovementForm) (*dto.MovementResultResponse, error) {
	if in.Quantity == "0" {
		return nil, domain.NewValidationError("cantidad", "La cantidad debe ser mayor a 0")
	}
	return &dto.MovementResultResponse{MovementID: 1, NewStock: 10}, nil
}

type fakeAlerts struct {
	pending map[int64]bool
	failPDF bool
}

func (f *fakeAlerts) Pending(context.Context) ([]dto.AlertResponse, error) {
	var out []dto.AlertResponse
	for id := range f.pending {
		out = append(out, dto.AlertResponse{ID: id, SKU: "X1", ProductName: "Arroz", CategoryName: "Abarrotes", Critical: true})
	}
	return out, nil
}

func (f *fakeAlerts) Resolve(_ context.Context, _ int64, id int64) error {
	if !f.pending[id] {
		return domain.ErrNotFound
	}
	delete(f.pending, id)
	return nil
}

func (f *fakeAlerts) Report(context.Context) ([]byte, error) {
	if f.failPDF {
		return nil, domain.ErrExternalService
	}
	return []byte("%PDF-1.4 test"), nil
}

type fakeUsers struct {
	active map[int64]bool
}

func (f *fakeUsers) List(_ context.Context, search, _, _, _ string) (*dto.UserListResponse, error) {
	return &dto.UserListResponse{
		Items:  []dto.UserResponse{{ID: 1, Username: "admin", Active: true}, {ID: 2, Username: "bodega1", Active: f.active[2]}},
		Search: search,
	}, nil
}

func (f *fakeUsers) Roles(context.Context) ([]dto.CatalogItem, error) {
	return []dto.CatalogItem{{ID: 1, Name: rbac.RoleNameAdministrator}}, nil
}

func (f *fakeUsers) Get(_ context.Context, id int64) (*dto.UserDetailResponse, error) {
	return &dto.UserDetailResponse{User: dto.UserResponse{ID: id}}, nil
}

func (f *fakeUsers) GetEditable(_ context.Context, actorID, id int64) (*dto.UserResponse, error) {
	if actorID == id {
		return nil, domain.ErrSelfAction
	}
	return &dto.UserResponse{ID: id}, nil
}

func (f *fakeUsers) GetBasic(_ context.Context, id int64) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: id}, nil
}

func (f *fakeUsers) Create(_ context.Context, in dto.UserCreateForm) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: 9, Username: in.Username}, nil
}

func (f *fakeUsers) Update(_ context.Context, actorID, id int64, _ dto.UserUpdateForm) (*dto.UserResponse, error) {
	if actorID == id {
		return nil, domain.ErrSelfAction
	}
	return &dto.UserResponse{ID: id}, nil
}

func (f *fakeUsers) ChangePassword(_ context.Context, _ int64, _ dto.PasswordForm) (string, error) {
	return "bodega1", nil
}

func (f *fakeUsers) ToggleActive(_ context.Context, actorID, id int64) (*dto.UserResponse, error) {
	if actorID == id {
		return nil, domain.ErrSelfAction
	}
	f.active[id] = !f.active[id]
	return &dto.UserResponse{ID: id, Username: "bodega1", Active: f.active[id]}, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

var errDown = errors.New("connection refused")
