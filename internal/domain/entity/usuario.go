package entity

// Roles válidos para Usuario.
const (
	RolDefault     = "default"     // crea y revisa facturas de sus locales
	RolPedidos     = "pedidos"     // solo revisión; asigna MR y exporta respaldos
	RolProveedores = "proveedores" // solo revisión; ve el estado MR sin poder asignarlo
)

// Usuario representa una entrada del directorio de usuarios.
// El directorio es un documento externo de solo lectura: esta aplicación nunca
// crea, modifica ni elimina usuarios, y la contraseña se compara en texto
// plano contra lo almacenado (contrato heredado del directorio).
type Usuario struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Rol      string   `json:"rol"`
	Locales  []string `json:"locales"`
}

// RolEfectivo devuelve el rol normalizado: una entrada sin rol es "default".
func (u *Usuario) RolEfectivo() string {
	if u.Rol == "" {
		return RolDefault
	}
	return u.Rol
}

// TieneLocal indica si el local está asignado al usuario.
func (u *Usuario) TieneLocal(local string) bool {
	for _, l := range u.Locales {
		if l == local {
			return true
		}
	}
	return false
}
