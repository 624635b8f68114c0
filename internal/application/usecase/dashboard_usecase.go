package usecase

import (
	"context"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
	"github.com/jhoicas/sgi-guatemart/internal/domain/rbac"
	"github.com/jhoicas/sgi-guatemart/internal/domain/repository"
)

const (
	dashboardTopProducts = 5
	dashboardLowStock    = 5
)

// DashboardUseCase arma el tablero principal según el rol.
type DashboardUseCase struct {
	repo   repository.DashboardRepository
	alerts repository.AlertRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository, alerts repository.AlertRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, alerts: alerts}
}

// Get devuelve el tablero. Ante un error de base siempre devuelve además una vista
// degradada (vacía, con Error) para que la página se pueda renderizar igual.
func (uc *DashboardUseCase) Get(ctx context.Context, perms rbac.Permissions) (*dto.DashboardResponse, error) {
	summary, err := uc.repo.Summary(ctx)
	if err != nil {
		return degradedDashboard(), err
	}
	lowStock, err := uc.alerts.LowStock(ctx)
	if err != nil {
		return degradedDashboard(), err
	}

	out := &dto.DashboardResponse{
		Stats:           filterStats(summary.Stats, perms.ViewPrices),
		TopProducts:     topProducts(summary.TopProducts, perms.ViewPrices),
		LowStockTotal:   len(lowStock),
		PendingAlerts:   summary.PendingAlerts,
		RecentMovements: toMovementResponses(summary.RecentMovements),
		CanViewFinance:  perms.ViewPrices,
	}
	if len(lowStock) > dashboardLowStock {
		lowStock = lowStock[:dashboardLowStock]
	}
	out.LowStock = make([]dto.LowStockResponse, 0, len(lowStock))
	for _, p := range lowStock {
		out.LowStock = append(out.LowStock, toLowStockResponse(p))
	}
	return out, nil
}

func degradedDashboard() *dto.DashboardResponse {
	return &dto.DashboardResponse{
		Stats:           map[string]any{},
		TopProducts:     []dto.TopProductDTO{},
		LowStock:        []dto.LowStockResponse{},
		RecentMovements: []dto.MovementResponse{},
		Error:           "Error al cargar estadísticas",
	}
}

// filterStats deja solo las cantidades cuando el rol no puede ver valores monetarios.
func filterStats(stats map[string]any, financial bool) map[string]any {
	if stats == nil {
		return map[string]any{}
	}
	if financial {
		return stats
	}
	out := make(map[string]any, len(dto.DashboardStatsPublic))
	for _, key := range dto.DashboardStatsPublic {
		if v, ok := stats[key]; ok {
			out[key] = v
		} else {
			out[key] = 0
		}
	}
	return out
}

func topProducts(list []entity.TopProduct, financial bool) []dto.TopProductDTO {
	if len(list) > dashboardTopProducts {
		list = list[:dashboardTopProducts]
	}
	out := make([]dto.TopProductDTO, 0, len(list))
	for _, p := range list {
		item := dto.TopProductDTO{SKU: p.SKU, Name: p.Name, UnitsSold: p.UnitsSold}
		if financial {
			item.Revenue = decimalPtr(p.Revenue)
		}
		out = append(out, item)
	}
	return out
}
