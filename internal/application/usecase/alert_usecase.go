package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/application/ports"
	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/repository"
)

// AlertUseCase consulta, resolución y reporte de alertas de stock.
type AlertUseCase struct {
	repo   repository.AlertRepository
	report ports.AlertReportGenerator
	now    func() time.Time
}

// NewAlertUseCase construye el caso de uso. report puede ser nil si no se generan PDFs.
func NewAlertUseCase(repo repository.AlertRepository, report ports.AlertReportGenerator) *AlertUseCase {
	return &AlertUseCase{repo: repo, report: report, now: time.Now}
}

// Pending alertas pendientes, críticas primero.
func (uc *AlertUseCase) Pending(ctx context.Context) ([]dto.AlertResponse, error) {
	alerts, err := uc.repo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, toAlertResponse(a))
	}
	return out, nil
}

// Resolve pasa la alerta de PENDIENTE a RESUELTA. Si no existe o ya estaba resuelta
// devuelve ErrNotFound y no modifica nada.
func (uc *AlertUseCase) Resolve(ctx context.Context, userID, id int64) error {
	ok, err := uc.repo.Resolve(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Report genera el PDF de alertas pendientes.
func (uc *AlertUseCase) Report(ctx context.Context) ([]byte, error) {
	if uc.report == nil {
		return nil, domain.ErrExternalService
	}
	alerts, err := uc.repo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return uc.report.AlertsReport(alerts, uc.now())
}
