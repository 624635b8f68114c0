package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/sgi-guatemart/internal/application/ports"
	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
	"github.com/jhoicas/sgi-guatemart/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	items     map[int64]*entity.Product
	nextID    int64
	createErr error
	creates   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[int64]*entity.Product{}, nextID: 1}
}

func (f *fakeProductRepo) List(_ context.Context, flt repository.ProductFilter) ([]*entity.Product, int, error) {
	term := strings.ToLower(strings.TrimSpace(flt.Search))
	var out []*entity.Product
	for _, p := range f.sorted() {
		if !p.Active {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.SKU), term) && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		out = append(out, p)
	}
	total := len(out)
	start := flt.Page.Offset()
	if start > total {
		start = total
	}
	end := start + domain.PerPage
	if end > total {
		end = total
	}
	return out[start:end], total, nil
}

func (f *fakeProductRepo) ListActive(context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.sorted() {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := f.items[id]
	if !ok || !p.Active {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) ExistsSKU(_ context.Context, sku string) (bool, error) {
	for _, p := range f.items {
		if p.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	p.ID = f.nextID
	f.nextID++
	p.CreatedAt = time.Now()
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	old, ok := f.items[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.SKU = old.SKU
	cp.CurrentStock = old.CurrentStock
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) SoftDelete(_ context.Context, id int64) (bool, error) {
	p, ok := f.items[id]
	if !ok || !p.Active {
		return false, nil
	}
	p.Active = false
	return true, nil
}

func (f *fakeProductRepo) sorted() []*entity.Product {
	out := make([]*entity.Product, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

type fakeMovementRepo struct {
	movements   []*entity.Movement
	types       []entity.MovementType
	registered  []repository.RegisterMovementParams
	registerErr error
	lastFilter  repository.MovementFilter
}

func (f *fakeMovementRepo) List(_ context.Context, flt repository.MovementFilter) ([]*entity.Movement, int, error) {
	f.lastFilter = flt
	return f.movements, len(f.movements), nil
}

func (f *fakeMovementRepo) ListByProduct(_ context.Context, productID int64, limit int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range f.movements {
		if m.ProductID == productID && len(out) < limit {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) Register(_ context.Context, p repository.RegisterMovementParams) (*entity.MovementResult, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = append(f.registered, p)
	return &entity.MovementResult{MovementID: int64(len(f.registered)), PreviousStock: 10, NewStock: 10 + p.Quantity}, nil
}

func (f *fakeMovementRepo) Types(context.Context) ([]entity.MovementType, error) {
	return f.types, nil
}

type fakeCatalogRepo struct{}

func (fakeCatalogRepo) Categories(context.Context) ([]entity.Category, error) {
	return []entity.Category{{ID: 1, Name: "Abarrotes", Active: true}}, nil
}

func (fakeCatalogRepo) Suppliers(context.Context) ([]entity.Supplier, error) {
	return []entity.Supplier{{ID: 1, Name: "Distribuidora Central", Active: true}}, nil
}

func (fakeCatalogRepo) Roles(context.Context) ([]entity.Role, error) {
	return []entity.Role{
		{ID: 1, Name: "Administrador", Description: "Acceso total"},
		{ID: 2, Name: "Operador de Bodega", Description: "Productos y movimientos"},
		{ID: 3, Name: "Usuario de Consulta", Description: "Solo lectura"},
	}, nil
}

type fakeUserRepo struct {
	items     map[int64]*entity.User
	nextID    int64
	passwords map[int64]string
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{items: map[int64]*entity.User{}, nextID: 1, passwords: map[int64]string{}}
	for _, u := range users {
		f.items[u.ID] = u
		if u.ID >= f.nextID {
			f.nextID = u.ID + 1
		}
	}
	return f
}

func (f *fakeUserRepo) List(_ context.Context, flt repository.UserFilter) ([]*entity.User, int, error) {
	var out []*entity.User
	for _, u := range f.items {
		if flt.RoleID != 0 && u.RoleID != flt.RoleID {
			continue
		}
		out = append(out, u)
	}
	return out, len(out), nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetActiveByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.items {
		if u.Username == username && u.Active {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsUsername(_ context.Context, username string) (bool, error) {
	for _, u := range f.items {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ExistsEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range f.items {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.items[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	f.items[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	f.passwords[id] = hash
	f.items[id].PasswordHash = hash
	return nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id int64, active bool) error {
	f.items[id].Active = active
	return nil
}

func (f *fakeUserRepo) TouchLastAccess(context.Context, int64) error { return nil }

func (f *fakeUserRepo) Stats(context.Context, int64) (*entity.UserStats, error) {
	return &entity.UserStats{TotalMovements: 4}, nil
}

type fakeAlertRepo struct {
	alerts   []*entity.StockAlert
	lowStock []entity.LowStockProduct
	err      error
}

func (f *fakeAlertRepo) ListPending(context.Context) ([]*entity.StockAlert, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.StockAlert
	for _, a := range f.alerts {
		if a.Pending() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlertRepo) Resolve(_ context.Context, id, userID int64) (bool, error) {
	for _, a := range f.alerts {
		if a.ID == id && a.Pending() {
			a.Status = entity.AlertStatusResolved
			a.ResolvedBy = &userID
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAlertRepo) LowStock(context.Context) ([]entity.LowStockProduct, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lowStock, nil
}

type fakeDashboardRepo struct {
	summary *entity.DashboardSummary
	err     error
}

func (f *fakeDashboardRepo) Summary(context.Context) (*entity.DashboardSummary, error) {
	return f.summary, f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Puertos externos
// ──────────────────────────────────────────────────────────────────────────────

type fakeLookup struct {
	products map[string]*ports.BarcodeProduct
	err      error
	calls    int
}

func (f *fakeLookup) Lookup(_ context.Context, code string) (*ports.BarcodeProduct, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products[code], nil
}

type fakeReport struct {
	got []*entity.StockAlert
}

func (f *fakeReport) AlertsReport(alerts []*entity.StockAlert, _ time.Time) ([]byte, error) {
	f.got = alerts
	return []byte("%PDF-1.4"), nil
}
