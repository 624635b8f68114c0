package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
	"github.com/jhoicas/sgi-guatemart/internal/domain/rbac"
	"github.com/jhoicas/sgi-guatemart/internal/domain/repository"
	"github.com/jhoicas/sgi-guatemart/pkg/password"
)

// fakeUserRepo implementa solo lo que usa el login; el resto no debe llamarse.
type fakeUserRepo struct {
	repository.UserRepository
	users   map[string]*entity.User
	touched []int64
	findErr error
}

func (f *fakeUserRepo) GetActiveByUsername(_ context.Context, username string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.users[username]
	if !ok || !u.Active {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) TouchLastAccess(_ context.Context, id int64) error {
	f.touched = append(f.touched, id)
	return nil
}

func newTestAuth(t *testing.T) (*AuthUseCase, *fakeUserRepo) {
	t.Helper()
	hash, err := password.Hash("admin123")
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"admin": {ID: 1, Username: "admin", FullName: "Administrador General", PasswordHash: hash,
			RoleID: 1, RoleName: rbac.RoleNameAdministrator, Active: true},
		"baja": {ID: 2, Username: "baja", PasswordHash: hash, RoleName: rbac.RoleNameOperator, Active: false},
	}}
	uc := NewAuthUseCase(repo, SessionConfig{Secret: "secret-test", Issuer: "sgi-test", Lifetime: time.Hour})
	return uc, repo
}

func TestLogin_Exitoso(t *testing.T) {
	uc, repo := newTestAuth(t)

	res, err := uc.Login(context.Background(), " admin ", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, int64(1), res.Identity.UserID)
	assert.Equal(t, "Administrador General", res.Identity.DisplayName)
	assert.True(t, res.Identity.Permissions().IsAdmin)
	assert.Equal(t, []int64{1}, repo.touched, "el login actualiza el último acceso")

	id, err := uc.Authenticate(res.Token)
	require.NoError(t, err)
	assert.Equal(t, *res.Identity, *id, "la sesión emitida reconstruye la misma identidad")
}

func TestLogin_CamposVacios(t *testing.T) {
	uc, _ := newTestAuth(t)

	_, err := uc.Login(context.Background(), "", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Por favor ingrese usuario y contraseña", domain.ValidationMessage(err, ""))
}

func TestLogin_CredencialesIncorrectas(t *testing.T) {
	uc, repo := newTestAuth(t)

	_, err := uc.Login(context.Background(), "admin", "incorrecta")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), "nadie", "admin123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), "baja", "admin123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "un usuario inactivo no puede iniciar sesión")
	assert.Empty(t, repo.touched)
}

func TestLogin_ErrorDeBase(t *testing.T) {
	uc, repo := newTestAuth(t)
	repo.findErr = &domain.DatabaseError{Op: "query", Err: errors.New("conexión rechazada")}

	_, err := uc.Login(context.Background(), "admin", "admin123")
	assert.ErrorIs(t, err, domain.ErrDatabase)
}

func TestAuthenticate_TokenInvalido(t *testing.T) {
	uc, _ := newTestAuth(t)

	_, err := uc.Authenticate("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Authenticate("token.invalido.aqui")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestIdentity_NilSinPermisos(t *testing.T) {
	var id *Identity
	assert.Equal(t, rbac.RoleUnknown, id.Role())
	assert.False(t, id.Permissions().Allows(rbac.CapViewPrices))

	ctx := WithIdentity(context.Background(), &Identity{UserID: 3, RoleName: rbac.RoleNameReadOnly})
	got := FromContext(ctx)
	require.NotNil(t, got)
	assert.True(t, got.Permissions().IsReadOnly)
	assert.Nil(t, FromContext(context.Background()))
}
