package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sgi-guatemart/internal/domain/rbac"
)

var allCapabilities = []rbac.Capability{
	rbac.CapCreateProduct,
	rbac.CapEditProduct,
	rbac.CapDeleteProduct,
	rbac.CapRegisterMovement,
	rbac.CapResolveAlert,
	rbac.CapViewPrices,
	rbac.CapManageUsers,
}

func TestFor_TablaDePermisos(t *testing.T) {
	cases := []struct {
		role    string
		allowed map[rbac.Capability]bool
	}{
		{
			role: rbac.RoleNameAdministrator,
			allowed: map[rbac.Capability]bool{
				rbac.CapCreateProduct: true, rbac.CapEditProduct: true, rbac.CapDeleteProduct: true,
				rbac.CapRegisterMovement: true, rbac.CapResolveAlert: true, rbac.CapViewPrices: true,
				rbac.CapManageUsers: true,
			},
		},
		{
			role: rbac.RoleNameOperator,
			allowed: map[rbac.Capability]bool{
				rbac.CapCreateProduct: true, rbac.CapEditProduct: true,
				rbac.CapRegisterMovement: true, rbac.CapViewPrices: true,
			},
		},
		{role: rbac.RoleNameReadOnly, allowed: map[rbac.Capability]bool{}},
	}

	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			perms := rbac.For(tc.role)
			for _, c := range allCapabilities {
				assert.Equal(t, tc.allowed[c], perms.Allows(c), "capacidad %d para %s", c, tc.role)
			}
		})
	}
}

func TestFor_SoloAdministradorEliminaProductos(t *testing.T) {
	for _, name := range []string{rbac.RoleNameAdministrator, rbac.RoleNameOperator, rbac.RoleNameReadOnly, "administrador", ""} {
		assert.Equal(t, name == rbac.RoleNameAdministrator, rbac.For(name).DeleteProduct, "rol %q", name)
	}
}

func TestFor_RolDesconocidoSinPermisos(t *testing.T) {
	for _, name := range []string{"", "admin", "Administrador ", "ADMINISTRADOR", "Supervisor"} {
		perms := rbac.For(name)
		assert.Equal(t, rbac.Permissions{}, perms, "rol %q no debe tener permisos", name)
		assert.Equal(t, rbac.RoleUnknown, rbac.ParseRole(name))
	}
}

func TestPermissions_Identidad(t *testing.T) {
	admin := rbac.For(rbac.RoleNameAdministrator)
	assert.True(t, admin.IsAdmin)
	assert.False(t, admin.IsOperator)
	assert.False(t, admin.IsReadOnly)

	op := rbac.For(rbac.RoleNameOperator)
	assert.True(t, op.IsOperator)
	assert.False(t, op.IsAdmin)

	ro := rbac.For(rbac.RoleNameReadOnly)
	assert.True(t, ro.IsReadOnly)
	assert.False(t, ro.ViewPrices)
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, rbac.RoleNameOperator, rbac.RoleOperator.String())
	assert.Equal(t, "", rbac.RoleUnknown.String())
}
