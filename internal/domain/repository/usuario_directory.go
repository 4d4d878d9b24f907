package repository

import "github.com/jhoicas/facturas-api/internal/domain/entity"

// UsuarioDirectory define el puerto de lectura del directorio de usuarios.
// El directorio se mantiene fuera del sistema y se relee en cada acceso:
// no hay caché ni mutación desde la aplicación.
type UsuarioDirectory interface {
	// FindByCredentials compara username y password de forma exacta y devuelve
	// la entrada coincidente, o domain.ErrCredencialesInvalidas.
	FindByCredentials(username, password string) (*entity.Usuario, error)
	// FindByUsername devuelve la entrada por username, o domain.ErrNotFound.
	FindByUsername(username string) (*entity.Usuario, error)
}

// ProveedorDirectory define el puerto de lectura de la lista de proveedores.
type ProveedorDirectory interface {
	// List devuelve los nombres de proveedores en el orden del archivo,
	// sin líneas vacías ni la línea de cabecera.
	List() ([]string, error)
}
