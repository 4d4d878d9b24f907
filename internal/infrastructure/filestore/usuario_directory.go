package filestore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jhoicas/facturas-api/internal/domain"
	"github.com/jhoicas/facturas-api/internal/domain/entity"
)

// UsuarioDirectory lee el directorio de usuarios desde un documento JSON
// externo con la forma {"usuarios": [{username, password, rol, locales[]}]}.
// El archivo se relee en cada llamada: los cambios hechos por el administrador
// fuera de la aplicación surten efecto sin reiniciar.
type UsuarioDirectory struct {
	path string
}

// NewUsuarioDirectory construye el directorio sobre la ruta dada.
func NewUsuarioDirectory(path string) *UsuarioDirectory {
	return &UsuarioDirectory{path: path}
}

type usuariosDoc struct {
	Usuarios []*entity.Usuario `json:"usuarios"`
}

func (d *UsuarioDirectory) load() ([]*entity.Usuario, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // sin archivo no hay usuarios, no es un error
		}
		return nil, fmt.Errorf("leer directorio de usuarios %s: %w", d.path, err)
	}
	var doc usuariosDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsear directorio de usuarios %s: %w", d.path, err)
	}
	return doc.Usuarios, nil
}

// FindByCredentials compara username y password de forma exacta (texto plano,
// contrato del directorio externo) y devuelve la entrada coincidente.
func (d *UsuarioDirectory) FindByCredentials(username, password string) (*entity.Usuario, error) {
	usuarios, err := d.load()
	if err != nil {
		return nil, err
	}
	for _, u := range usuarios {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return nil, domain.ErrCredencialesInvalidas
}

// FindByUsername devuelve la entrada por username.
func (d *UsuarioDirectory) FindByUsername(username string) (*entity.Usuario, error) {
	usuarios, err := d.load()
	if err != nil {
		return nil, err
	}
	for _, u := range usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}
