package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/sgi-guatemart/internal/domain"
)

// Observer recibe el resultado de cada operación contra la base (métricas).
type Observer func(op string, err error)

// Database es la capa de acceso a datos: lecturas, escrituras transaccionales y
// llamadas a procedimientos. Cada request usa una sola conexión a través de su Scope.
type Database struct {
	db       *sqlx.DB
	observer Observer
}

// Option configura Database.
type Option func(*Database)

// WithObserver registra un observador de operaciones.
func WithObserver(o Observer) Option {
	return func(d *Database) { d.observer = o }
}

// NewDatabase construye la capa de acceso sobre un pool sqlx.
func NewDatabase(db *sqlx.DB, opts ...Option) *Database {
	d := &Database{db: db}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DB devuelve el pool subyacente (migraciones, health check).
func (d *Database) DB() *sqlx.DB { return d.db }

// Ping verifica la conectividad con la base.
func (d *Database) Ping(ctx context.Context) error { return d.db.PingContext(ctx) }

// ── Scope ─────────────────────────────────────────────────────────────────────

// Scope mantiene la conexión de un request. Se adquiere en el primer uso y se
// libera con Release al terminar el request, haya o no error. No es seguro para
// uso concurrente: pertenece a un único request.
type Scope struct {
	db   *sqlx.DB
	conn *sqlx.Conn
}

// NewScope crea un scope sin conexión adquirida.
func (d *Database) NewScope() *Scope {
	return &Scope{db: d.db}
}

func (s *Scope) acquire(ctx context.Context) (*sqlx.Conn, error) {
	if s.conn != nil {
		return s.conn, nil
	}
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	s.conn = conn
	return conn, nil
}

// Acquired indica si el scope llegó a tomar una conexión.
func (s *Scope) Acquired() bool { return s.conn != nil }

// Release devuelve la conexión al pool. Es idempotente.
func (s *Scope) Release() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

type scopeKey struct{}

// WithScope asocia el scope del request al contexto.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFrom devuelve el scope del request, si existe.
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(*Scope)
	return s, ok && s != nil
}

// conn usa el scope del request o, fuera de un request, uno de un solo uso.
func (d *Database) conn(ctx context.Context) (*sqlx.Conn, func(), error) {
	if s, ok := ScopeFrom(ctx); ok {
		conn, err := s.acquire(ctx)
		return conn, func() {}, err
	}
	s := d.NewScope()
	conn, err := s.acquire(ctx)
	return conn, func() { _ = s.Release() }, err
}

func (d *Database) fail(op string, err error) error {
	d.observe(op, err)
	return &domain.DatabaseError{Op: op, Err: err}
}

func (d *Database) observe(op string, err error) {
	if d.observer != nil {
		d.observer(op, err)
	}
}

// ── Operaciones ───────────────────────────────────────────────────────────────

// Query ejecuta una lectura parametrizada y devuelve las filas como registros columna -> valor.
func (d *Database) Query(ctx context.Context, query string, args ...any) ([]Record, error) {
	conn, release, err := d.conn(ctx)
	if err != nil {
		return nil, d.fail("query", err)
	}
	defer release()

	rows, err := conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, d.fail("query", err)
	}
	records, err := scanRecords(rows)
	if err != nil {
		return nil, d.fail("query", err)
	}
	d.observe("query", nil)
	return records, nil
}

// QueryOne devuelve el primer registro o nil si la consulta no produjo filas.
func (d *Database) QueryOne(ctx context.Context, query string, args ...any) (Record, error) {
	records, err := d.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

// Count ejecuta una consulta COUNT de una sola columna y devuelve su valor.
func (d *Database) Count(ctx context.Context, query string, args ...any) (int, error) {
	conn, release, err := d.conn(ctx)
	if err != nil {
		return 0, d.fail("count", err)
	}
	defer release()

	var n int64
	if err := conn.GetContext(ctx, &n, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			d.observe("count", nil)
			return 0, nil
		}
		return 0, d.fail("count", err)
	}
	d.observe("count", nil)
	return int(n), nil
}

// Exec ejecuta una escritura en su propia transacción y devuelve las filas afectadas.
// Si falla, hace Rollback y devuelve *domain.DatabaseError con el mensaje del driver.
func (d *Database) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	conn, release, err := d.conn(ctx)
	if err != nil {
		return 0, d.fail("exec", err)
	}
	defer release()

	var affected int64
	err = runInTx(ctx, conn, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, d.fail("exec", err)
	}
	d.observe("exec", nil)
	return affected, nil
}

// Param es un parámetro con nombre de un procedimiento. El orden de la lista
// define la posición en la llamada.
type Param struct {
	Name  string
	Value any
}

// P construye un Param.
func P(name string, value any) Param { return Param{Name: name, Value: value} }

// Procedure llama a una función almacenada dentro de una transacción y devuelve
// todos sus conjuntos de resultados. Si la función devuelve refcursors, cada uno
// se lee con FETCH ALL como un conjunto independiente.
func (d *Database) Procedure(ctx context.Context, name string, params ...Param) ([][]Record, error) {
	if !validIdentifier(name) {
		return nil, d.fail("procedure", fmt.Errorf("nombre de procedimiento inválido: %q", name))
	}
	conn, release, err := d.conn(ctx)
	if err != nil {
		return nil, d.fail("procedure", err)
	}
	defer release()

	placeholders := make([]string, len(params))
	args := make([]any, len(params))
	for i, p := range params {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = p.Value
	}
	call := fmt.Sprintf("SELECT * FROM %s(%s)",
		pgx.Identifier(strings.Split(name, ".")).Sanitize(),
		strings.Join(placeholders, ", "),
	)

	var sets [][]Record
	err = runInTx(ctx, conn, func(tx *sqlx.Tx) error {
		rows, err := tx.QueryxContext(ctx, call, args...)
		if err != nil {
			return err
		}
		cursor, err := isCursorResult(rows)
		if err != nil {
			_ = rows.Close()
			return err
		}
		first, err := scanRecords(rows)
		if err != nil {
			return err
		}
		if !cursor {
			sets = append(sets, first)
			return nil
		}
		for _, rec := range first {
			for _, v := range rec {
				cursorName := toString(v)
				fetched, err := tx.QueryxContext(ctx, "FETCH ALL IN "+pgx.Identifier{cursorName}.Sanitize())
				if err != nil {
					return fmt.Errorf("fetch cursor %s: %w", cursorName, err)
				}
				set, err := scanRecords(fetched)
				if err != nil {
					return err
				}
				sets = append(sets, set)
			}
		}
		return nil
	})
	if err != nil {
		return nil, d.fail("procedure", err)
	}
	d.observe("procedure", nil)
	return sets, nil
}

// isCursorResult detecta un resultado cuyas columnas son todas refcursor.
func isCursorResult(rows *sqlx.Rows) (bool, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return false, err
	}
	if len(types) == 0 {
		return false, nil
	}
	for _, ct := range types {
		switch strings.ToUpper(ct.DatabaseTypeName()) {
		case "REFCURSOR", "1790":
		default:
			return false, nil
		}
	}
	return true, nil
}

func scanRecords(rows *sqlx.Rows) ([]Record, error) {
	defer rows.Close()
	records := make([]Record, 0)
	for rows.Next() {
		rec := make(map[string]any)
		if err := rows.MapScan(rec); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		records = append(records, Record(rec))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
