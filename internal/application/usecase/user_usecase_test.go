package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
	"github.com/jhoicas/sgi-guatemart/pkg/password"
)

const adminID int64 = 1

func newUserUC() (*UserUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo(
		&entity.User{ID: adminID, Username: "admin", FullName: "Administrador", Email: "admin@guatemart.gt", RoleID: 1, RoleName: "Administrador", Active: true},
		&entity.User{ID: 2, Username: "bodega1", FullName: "Carlos Pérez", Email: "carlos@guatemart.gt", RoleID: 2, RoleName: "Operador de Bodega", Active: true},
	)
	return NewUserUseCase(repo, fakeCatalogRepo{}), repo
}

func validUserForm() dto.UserCreateForm {
	return dto.UserCreateForm{
		Username:        " consulta1 ",
		Password:        "secreto1",
		PasswordConfirm: "secreto1",
		FullName:        "Ana López",
		Email:           "ana@guatemart.gt",
		RoleID:          "3",
	}
}

func TestUserCreate_HasheaYNormaliza(t *testing.T) {
	uc, repo := newUserUC()

	out, err := uc.Create(context.Background(), validUserForm())
	require.NoError(t, err)
	assert.Equal(t, "consulta1", out.Username)
	assert.True(t, out.Active)

	stored := repo.items[out.ID]
	assert.NotEqual(t, "secreto1", stored.PasswordHash)
	assert.NoError(t, password.Verify(stored.PasswordHash, "secreto1"))
}

func TestUserCreate_Validaciones(t *testing.T) {
	uc, _ := newUserUC()
	ctx := context.Background()

	cases := []struct {
		name string
		edit func(*dto.UserCreateForm)
		msg  string
	}{
		{"campos vacíos", func(f *dto.UserCreateForm) { f.Email = " " }, "Todos los campos son obligatorios"},
		{"username corto", func(f *dto.UserCreateForm) { f.Username = "ab" }, "El nombre de usuario debe tener al menos 3 caracteres"},
		{"password corto", func(f *dto.UserCreateForm) { f.Password, f.PasswordConfirm = "12345", "12345" }, "La contraseña debe tener al menos 6 caracteres"},
		{"password corto multibyte", func(f *dto.UserCreateForm) { f.Password, f.PasswordConfirm = "ñññ", "ñññ" }, "La contraseña debe tener al menos 6 caracteres"},
		{"password mayor a 72 bytes", func(f *dto.UserCreateForm) {
			long := strings.Repeat("a", 80)
			f.Password, f.PasswordConfirm = long, long
		}, "La contraseña es demasiado larga (máximo 72 bytes)"},
		{"confirmación distinta", func(f *dto.UserCreateForm) { f.PasswordConfirm = "otro123" }, "Las contraseñas no coinciden"},
		{"rol inválido", func(f *dto.UserCreateForm) { f.RoleID = "x" }, "Seleccione un rol válido"},
		{"username existente", func(f *dto.UserCreateForm) { f.Username = "bodega1" }, "El nombre de usuario ya existe"},
		{"email existente", func(f *dto.UserCreateForm) { f.Email = "carlos@guatemart.gt" }, "El correo electrónico ya está registrado"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validUserForm()
			tc.edit(&form)
			_, err := uc.Create(ctx, form)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, tc.msg, domain.ValidationMessage(err, ""))
		})
	}
}

func TestUserUpdate_NoPuedeEditarseASiMismo(t *testing.T) {
	uc, repo := newUserUC()
	ctx := context.Background()

	_, err := uc.GetEditable(ctx, adminID, adminID)
	assert.ErrorIs(t, err, domain.ErrSelfAction)

	_, err = uc.Update(ctx, adminID, adminID, dto.UserUpdateForm{FullName: "Otro", Email: "x@y.gt", RoleID: "3"})
	assert.ErrorIs(t, err, domain.ErrSelfAction)
	assert.Equal(t, "Administrador", repo.items[adminID].FullName, "no debe haber mutación")
}

func TestUserUpdate_EmailDeOtroUsuario(t *testing.T) {
	uc, _ := newUserUC()

	_, err := uc.Update(context.Background(), adminID, 2, dto.UserUpdateForm{
		FullName: "Carlos", Email: "admin@guatemart.gt", RoleID: "2", Active: "on",
	})
	assert.Equal(t, "El correo electrónico ya está registrado en otro usuario", domain.ValidationMessage(err, ""))
}

func TestUserUpdate_ConservaSuPropioEmail(t *testing.T) {
	uc, repo := newUserUC()

	out, err := uc.Update(context.Background(), adminID, 2, dto.UserUpdateForm{
		FullName: "Carlos A. Pérez", Email: "carlos@guatemart.gt", RoleID: "3",
	})
	require.NoError(t, err)
	assert.False(t, out.Active, "checkbox vacío desactiva")
	assert.Equal(t, int64(3), repo.items[2].RoleID)
}

func TestUserToggleActive(t *testing.T) {
	uc, repo := newUserUC()
	ctx := context.Background()

	out, err := uc.ToggleActive(ctx, adminID, 2)
	require.NoError(t, err)
	assert.False(t, out.Active)
	assert.False(t, repo.items[2].Active)

	out, err = uc.ToggleActive(ctx, adminID, 2)
	require.NoError(t, err)
	assert.True(t, out.Active)

	_, err = uc.ToggleActive(ctx, adminID, adminID)
	assert.ErrorIs(t, err, domain.ErrSelfAction)
	assert.True(t, repo.items[adminID].Active)

	_, err = uc.ToggleActive(ctx, adminID, 77)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserChangePassword(t *testing.T) {
	uc, repo := newUserUC()
	ctx := context.Background()

	_, err := uc.ChangePassword(ctx, 2, dto.PasswordForm{})
	assert.Equal(t, "Debe ingresar la contraseña", domain.ValidationMessage(err, ""))

	_, err = uc.ChangePassword(ctx, 2, dto.PasswordForm{Password: "nueva123", PasswordConfirm: "nueva124"})
	assert.Equal(t, "Las contraseñas no coinciden", domain.ValidationMessage(err, ""))
	assert.Empty(t, repo.passwords)

	username, err := uc.ChangePassword(ctx, 2, dto.PasswordForm{Password: "nueva123", PasswordConfirm: "nueva123"})
	require.NoError(t, err)
	assert.Equal(t, "bodega1", username)
	assert.NoError(t, password.Verify(repo.passwords[2], "nueva123"))
}

func TestUserPassword_LongitudEnCaracteres(t *testing.T) {
	uc, repo := newUserUC()
	ctx := context.Background()

	form := validUserForm()
	form.Password, form.PasswordConfirm = "ñandú6", "ñandú6"
	out, err := uc.Create(ctx, form)
	require.NoError(t, err, "seis caracteres bastan aunque ocupen más bytes")
	assert.NoError(t, password.Verify(repo.items[out.ID].PasswordHash, "ñandú6"))

	_, err = uc.ChangePassword(ctx, 2, dto.PasswordForm{Password: "ñññ", PasswordConfirm: "ñññ"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "La contraseña debe tener al menos 6 caracteres", domain.ValidationMessage(err, ""))
	assert.Empty(t, repo.passwords)
}

func TestUserChangePassword_DemasiadoLarga(t *testing.T) {
	uc, repo := newUserUC()
	long := strings.Repeat("x", 80)

	_, err := uc.ChangePassword(context.Background(), 2, dto.PasswordForm{Password: long, PasswordConfirm: long})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "La contraseña es demasiado larga (máximo 72 bytes)", domain.ValidationMessage(err, ""))
	assert.Empty(t, repo.passwords)
}

func TestUserListYDetalle(t *testing.T) {
	uc, _ := newUserUC()
	ctx := context.Background()

	list, err := uc.List(ctx, "", "2", "desconocido", "")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "bodega1", list.Items[0].Username)
	assert.Empty(t, list.Status, "un estado desconocido no filtra")
	assert.Len(t, list.Roles, 3)

	detail, err := uc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, detail.TotalMovements)
	assert.Equal(t, "Productos y movimientos", detail.RoleDescription)

	_, err = uc.Get(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
