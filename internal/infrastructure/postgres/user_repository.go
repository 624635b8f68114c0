package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
	"github.com/jhoicas/sgi-guatemart/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userSelect = `
	SELECT u.id_usuario, u.username, u.password_hash, u.nombre_completo, u.email, u.id_rol, r.nombre_rol,
	       u.activo, u.fecha_creacion, u.fecha_modificacion, u.ultimo_acceso
	FROM usuarios u
	INNER JOIN roles r ON r.id_rol = u.id_rol`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db *Database
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *Database) *UserRepo {
	return &UserRepo{db: db}
}

// List devuelve una página de usuarios filtrada por texto, rol y estado.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, int, error) {
	lq := NewListQuery(userSelect, "SELECT COUNT(*) AS total FROM usuarios u").
		Search(f.Search, "u.username", "u.nombre_completo", "u.email")
	if f.RoleID > 0 {
		lq.Equal("u.id_rol", f.RoleID)
	}
	switch f.Status {
	case repository.UserStatusActive:
		lq.Where("u.activo = TRUE")
	case repository.UserStatusInactive:
		lq.Where("u.activo = FALSE")
	}
	lq.OrderBy("u.fecha_creacion DESC").Paginate(f.Page)

	countSQL, countArgs := lq.BuildCount()
	total, err := r.db.Count(ctx, countSQL, countArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	query, args := lq.Build()
	records, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	list := make([]*entity.User, 0, len(records))
	for _, rec := range records {
		list = append(list, mapUser(rec))
	}
	return list, total, nil
}

// GetByID obtiene un usuario por ID (activo o no).
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	rec, err := r.db.QueryOne(ctx, userSelect+` WHERE u.id_usuario = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	return mapUser(rec), nil
}

// GetActiveByUsername obtiene un usuario activo por username (login).
func (r *UserRepo) GetActiveByUsername(ctx context.Context, username string) (*entity.User, error) {
	rec, err := r.db.QueryOne(ctx, userSelect+` WHERE u.username = $1 AND u.activo = TRUE`, username)
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	return mapUser(rec), nil
}

// ExistsUsername indica si el username ya está registrado.
func (r *UserRepo) ExistsUsername(ctx context.Context, username string) (bool, error) {
	n, err := r.db.Count(ctx, `SELECT COUNT(*) AS total FROM usuarios WHERE username = $1`, username)
	if err != nil {
		return false, fmt.Errorf("count username: %w", err)
	}
	return n > 0, nil
}

// ExistsEmail indica si otro usuario distinto de excludeID ya usa el email.
func (r *UserRepo) ExistsEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	n, err := r.db.Count(ctx,
		`SELECT COUNT(*) AS total FROM usuarios WHERE email = $1 AND id_usuario <> $2`, email, excludeID)
	if err != nil {
		return false, fmt.Errorf("count email: %w", err)
	}
	return n > 0, nil
}

// Create persiste un nuevo usuario activo.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO usuarios (username, password_hash, nombre_completo, email, id_rol, activo)
		VALUES ($1, $2, $3, $4, $5, TRUE)`
	_, err := r.db.Exec(ctx, query, u.Username, u.PasswordHash, u.FullName, u.Email, u.RoleID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Update modifica nombre, email, rol y estado. username y contraseña no se tocan.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE usuarios
		SET nombre_completo = $2, email = $3, id_rol = $4, activo = $5, fecha_modificacion = now()
		WHERE id_usuario = $1`
	n, err := r.db.Exec(ctx, query, u.ID, u.FullName, u.Email, u.RoleID, u.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePassword reemplaza el hash de contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	n, err := r.db.Exec(ctx,
		`UPDATE usuarios SET password_hash = $2, fecha_modificacion = now() WHERE id_usuario = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive activa o desactiva la cuenta.
func (r *UserRepo) SetActive(ctx context.Context, id int64, active bool) error {
	n, err := r.db.Exec(ctx,
		`UPDATE usuarios SET activo = $2, fecha_modificacion = now() WHERE id_usuario = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set user active: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TouchLastAccess registra la fecha del último inicio de sesión.
func (r *UserRepo) TouchLastAccess(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `UPDATE usuarios SET ultimo_acceso = now() WHERE id_usuario = $1`, id); err != nil {
		return fmt.Errorf("touch last access: %w", err)
	}
	return nil
}

// Stats devuelve el total de movimientos registrados por el usuario y la fecha del último.
func (r *UserRepo) Stats(ctx context.Context, id int64) (*entity.UserStats, error) {
	rec, err := r.db.QueryOne(ctx, `
		SELECT COUNT(*) AS total_movimientos, MAX(fecha_movimiento) AS ultimo_movimiento
		FROM movimientos WHERE id_usuario = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	if rec == nil {
		return &entity.UserStats{}, nil
	}
	return &entity.UserStats{
		TotalMovements: rec.Int("total_movimientos"),
		LastMovement:   rec.TimePtr("ultimo_movimiento"),
	}, nil
}

func mapUser(rec Record) *entity.User {
	return &entity.User{
		ID:           rec.Int64("id_usuario"),
		Username:     rec.String("username"),
		PasswordHash: rec.String("password_hash"),
		FullName:     rec.String("nombre_completo"),
		Email:        rec.String("email"),
		RoleID:       rec.Int64("id_rol"),
		RoleName:     rec.String("nombre_rol"),
		Active:       rec.Bool("activo"),
		CreatedAt:    rec.Time("fecha_creacion"),
		UpdatedAt:    rec.TimePtr("fecha_modificacion"),
		LastAccess:   rec.TimePtr("ultimo_acceso"),
	}
}
