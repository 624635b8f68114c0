package http_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sgi-guatemart/internal/application/auth"
	"github.com/jhoicas/sgi-guatemart/internal/domain/rbac"
	apphttp "github.com/jhoicas/sgi-guatemart/internal/interfaces/http"
)

func TestGuard_SinSesion(t *testing.T) {
	res := apphttp.Guard(nil, rbac.CapManageUsers)
	assert.Equal(t, apphttp.Unauthenticated, res.Outcome)
	assert.Nil(t, res.Identity)

	// La autenticación se evalúa antes que cualquier capacidad.
	assert.Equal(t, apphttp.Unauthenticated, apphttp.Guard(nil).Outcome)
}

func TestGuard_SinPermiso(t *testing.T) {
	consulta := &auth.Identity{UserID: 3, RoleName: rbac.RoleNameReadOnly}
	res := apphttp.Guard(consulta, rbac.CapManageUsers)
	assert.Equal(t, apphttp.Forbidden, res.Outcome)
	assert.Nil(t, res.Identity)

	operador := &auth.Identity{UserID: 2, RoleName: rbac.RoleNameOperator}
	assert.Equal(t, apphttp.Forbidden, apphttp.Guard(operador, rbac.CapEditProduct, rbac.CapDeleteProduct).Outcome,
		"todas las capacidades deben concederse")
}

func TestGuard_Autorizado(t *testing.T) {
	admin := &auth.Identity{UserID: 1, RoleName: rbac.RoleNameAdministrator}
	res := apphttp.Guard(admin, rbac.CapManageUsers, rbac.CapDeleteProduct)
	assert.Equal(t, apphttp.Authorized, res.Outcome)
	assert.Same(t, admin, res.Identity)

	consulta := &auth.Identity{UserID: 3, RoleName: rbac.RoleNameReadOnly}
	assert.Equal(t, apphttp.Authorized, apphttp.Guard(consulta).Outcome, "sin capacidades basta la sesión")
}

func TestGuard_RolDesconocido(t *testing.T) {
	raro := &auth.Identity{UserID: 9, RoleName: "administrador"}
	assert.Equal(t, apphttp.Forbidden, apphttp.Guard(raro, rbac.CapViewPrices).Outcome)
}
