package ports

import (
	"time"

	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
)

// AlertReportGenerator genera el reporte PDF de alertas de stock pendientes.
type AlertReportGenerator interface {
	AlertsReport(alerts []*entity.StockAlert, generatedAt time.Time) ([]byte, error)
}
