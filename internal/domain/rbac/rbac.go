// Package rbac deriva los permisos de un usuario a partir del nombre de su rol.
//
// El conjunto de roles es cerrado. Cualquier nombre que no coincida exactamente
// con uno de ellos produce RoleUnknown y ningún permiso.
package rbac

// Nombres de rol tal como están almacenados en la tabla roles.
const (
	RoleNameAdministrator = "Administrador"
	RoleNameOperator      = "Operador de Bodega"
	RoleNameReadOnly      = "Usuario de Consulta"
)

// Role es la enumeración cerrada de roles del sistema.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdministrator
	RoleOperator
	RoleReadOnly
)

// ParseRole compara por igualdad exacta (sensible a mayúsculas y espacios).
func ParseRole(name string) Role {
	switch name {
	case RoleNameAdministrator:
		return RoleAdministrator
	case RoleNameOperator:
		return RoleOperator
	case RoleNameReadOnly:
		return RoleReadOnly
	default:
		return RoleUnknown
	}
}

// String devuelve el nombre almacenado del rol, vacío para RoleUnknown.
func (r Role) String() string {
	switch r {
	case RoleAdministrator:
		return RoleNameAdministrator
	case RoleOperator:
		return RoleNameOperator
	case RoleReadOnly:
		return RoleNameReadOnly
	default:
		return ""
	}
}

// Capability es una acción protegida por rol.
type Capability int

const (
	CapCreateProduct Capability = iota + 1
	CapEditProduct
	CapDeleteProduct
	CapRegisterMovement
	CapResolveAlert
	CapViewPrices
	CapManageUsers
)

// Permissions es el registro de permisos que consumen handlers y plantillas.
type Permissions struct {
	CreateProduct    bool
	EditProduct      bool
	DeleteProduct    bool
	RegisterMovement bool
	ResolveAlert     bool
	ViewPrices       bool
	ManageUsers      bool
	IsAdmin          bool
	IsOperator       bool
	IsReadOnly       bool
}

// Permissions devuelve la tabla de permisos del rol. Es total: RoleUnknown no tiene ninguno.
func (r Role) Permissions() Permissions {
	switch r {
	case RoleAdministrator:
		return Permissions{
			CreateProduct:    true,
			EditProduct:      true,
			DeleteProduct:    true,
			RegisterMovement: true,
			ResolveAlert:     true,
			ViewPrices:       true,
			ManageUsers:      true,
			IsAdmin:          true,
		}
	case RoleOperator:
		return Permissions{
			CreateProduct:    true,
			EditProduct:      true,
			RegisterMovement: true,
			ViewPrices:       true,
			IsOperator:       true,
		}
	case RoleReadOnly:
		return Permissions{IsReadOnly: true}
	default:
		return Permissions{}
	}
}

// For deriva los permisos desde el nombre de rol almacenado.
func For(roleName string) Permissions {
	return ParseRole(roleName).Permissions()
}

// Allows indica si el registro concede la capacidad.
func (p Permissions) Allows(c Capability) bool {
	switch c {
	case CapCreateProduct:
		return p.CreateProduct
	case CapEditProduct:
		return p.EditProduct
	case CapDeleteProduct:
		return p.DeleteProduct
	case CapRegisterMovement:
		return p.RegisterMovement
	case CapResolveAlert:
		return p.ResolveAlert
	case CapViewPrices:
		return p.ViewPrices
	case CapManageUsers:
		return p.ManageUsers
	default:
		return false
	}
}
