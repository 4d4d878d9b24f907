package facturas

import "github.com/jhoicas/facturas-api/internal/domain/entity"

// Session estado de la sesión interactiva, construido una sola vez al hacer
// login (viaja en los claims del JWT) y pasado explícitamente a cada caso de
// uso. Los locales visibles y el rol quedan fijos por la vida del token.
type Session struct {
	Username string
	Rol      string
	Locales  []string
}

// TieneLocal indica si el local está dentro del conjunto visible de la sesión.
func (s Session) TieneLocal(local string) bool {
	for _, l := range s.Locales {
		if l == local {
			return true
		}
	}
	return false
}

// VeMR indica si el rol tiene visibilidad del estado MR (pedidos y proveedores).
func (s Session) VeMR() bool {
	return s.Rol == entity.RolPedidos || s.Rol == entity.RolProveedores
}

// PuedeRegistrar indica si el rol puede crear facturas (todos menos pedidos y proveedores).
func (s Session) PuedeRegistrar() bool {
	return !s.VeMR()
}

// PuedeAsignarMR indica si el rol puede asignar números de MR (solo pedidos).
func (s Session) PuedeAsignarMR() bool {
	return s.Rol == entity.RolPedidos
}
