package auth

import (
	"context"

	"github.com/jhoicas/sgi-guatemart/internal/domain/rbac"
)

// Identity es el usuario autenticado de la petición en curso.
// Se reconstruye de la cookie de sesión en cada petición; nunca se comparte.
type Identity struct {
	UserID      int64
	Username    string
	DisplayName string
	RoleName    string
	RoleID      int64
}

// Role devuelve el rol cerrado derivado del nombre almacenado.
func (i *Identity) Role() rbac.Role {
	if i == nil {
		return rbac.RoleUnknown
	}
	return rbac.ParseRole(i.RoleName)
}

// Permissions deriva los permisos del rol. Una identidad nil no tiene ninguno.
func (i *Identity) Permissions() rbac.Permissions {
	return i.Role().Permissions()
}

type identityKey struct{}

// WithIdentity guarda la identidad en el contexto.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext devuelve la identidad del contexto o nil si la petición es anónima.
func FromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}
