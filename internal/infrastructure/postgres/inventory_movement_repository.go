package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
	"github.com/jhoicas/sgi-guatemart/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementSelect = `
	SELECT v.id_movimiento, v.fecha_movimiento, v.id_producto, v.sku, v.nombre_producto,
	       v.id_tipo_movimiento, v.nombre_tipo, v.afecta_stock, v.cantidad, v.stock_anterior, v.stock_nuevo,
	       v.id_usuario, v.username, v.id_proveedor, v.nombre_proveedor, v.numero_documento, v.observaciones
	FROM vw_historial_movimientos v`

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
type MovementRepo struct {
	db *Database
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(db *Database) *MovementRepo {
	return &MovementRepo{db: db}
}

// List devuelve una página del historial filtrada por texto y tipo.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, int, error) {
	lq := NewListQuery(movementSelect, "SELECT COUNT(*) AS total FROM vw_historial_movimientos v").
		Search(f.Search, "v.sku", "v.nombre_producto", "v.numero_documento")
	if f.TypeID > 0 {
		lq.Equal("v.id_tipo_movimiento", f.TypeID)
	}
	lq.OrderBy("v.fecha_movimiento DESC, v.id_movimiento DESC").Paginate(f.Page)

	countSQL, countArgs := lq.BuildCount()
	total, err := r.db.Count(ctx, countSQL, countArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}
	query, args := lq.Build()
	records, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	return mapMovements(records), total, nil
}

// ListByProduct devuelve los últimos movimientos de un producto.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.Movement, error) {
	records, err := r.db.Query(ctx,
		movementSelect+` WHERE v.id_producto = $1 ORDER BY v.fecha_movimiento DESC, v.id_movimiento DESC LIMIT $2`,
		productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list product movements: %w", err)
	}
	return mapMovements(records), nil
}

// Register delega en sp_registrar_movimiento, que valida stock, inserta el movimiento,
// actualiza stock_actual y genera alertas en una sola transacción.
// Las excepciones de negocio del procedimiento (RAISE) se devuelven como ValidationError.
func (r *MovementRepo) Register(ctx context.Context, p repository.RegisterMovementParams) (*entity.MovementResult, error) {
	sets, err := r.db.Procedure(ctx, "sp_registrar_movimiento",
		P("p_id_producto", p.ProductID),
		P("p_id_tipo_movimiento", p.TypeID),
		P("p_cantidad", p.Quantity),
		P("p_id_usuario", p.UserID),
		P("p_id_proveedor", p.SupplierID),
		P("p_numero_documento", nullIfEmpty(p.DocumentNumber)),
		P("p_observaciones", nullIfEmpty(p.Notes)),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "P0001" {
			return nil, domain.NewValidationError("cantidad", pgErr.Message)
		}
		return nil, fmt.Errorf("register movement: %w", err)
	}
	if len(sets) == 0 || len(sets[0]) == 0 {
		return &entity.MovementResult{}, nil
	}
	rec := sets[0][0]
	return &entity.MovementResult{
		MovementID:    rec.Int64("id_movimiento"),
		PreviousStock: rec.Int("stock_anterior"),
		NewStock:      rec.Int("stock_nuevo"),
	}, nil
}

// Types devuelve los tipos de movimiento activos.
func (r *MovementRepo) Types(ctx context.Context) ([]entity.MovementType, error) {
	records, err := r.db.Query(ctx, `
		SELECT id_tipo_movimiento, nombre_tipo, afecta_stock, activo
		FROM tipos_movimiento WHERE activo = TRUE ORDER BY nombre_tipo`)
	if err != nil {
		return nil, fmt.Errorf("list movement types: %w", err)
	}
	types := make([]entity.MovementType, 0, len(records))
	for _, rec := range records {
		types = append(types, entity.MovementType{
			ID:          rec.Int64("id_tipo_movimiento"),
			Name:        rec.String("nombre_tipo"),
			StockEffect: rec.Int("afecta_stock"),
			Active:      rec.Bool("activo"),
		})
	}
	return types, nil
}

func mapMovements(records []Record) []*entity.Movement {
	list := make([]*entity.Movement, 0, len(records))
	for _, rec := range records {
		list = append(list, mapMovement(rec))
	}
	return list
}

func mapMovement(rec Record) *entity.Movement {
	return &entity.Movement{
		ID:             rec.Int64("id_movimiento"),
		Date:           rec.Time("fecha_movimiento"),
		ProductID:      rec.Int64("id_producto"),
		SKU:            rec.String("sku"),
		ProductName:    rec.String("nombre_producto"),
		TypeID:         rec.Int64("id_tipo_movimiento"),
		TypeName:       rec.String("nombre_tipo"),
		StockEffect:    rec.Int("afecta_stock"),
		Quantity:       rec.Int("cantidad"),
		PreviousStock:  rec.Int("stock_anterior"),
		NewStock:       rec.Int("stock_nuevo"),
		UserID:         rec.Int64("id_usuario"),
		Username:       rec.String("username"),
		SupplierID:     rec.Int64Ptr("id_proveedor"),
		SupplierName:   rec.String("nombre_proveedor"),
		DocumentNumber: rec.String("numero_documento"),
		Notes:          rec.String("observaciones"),
	}
}
