package filestore

import (
	"fmt"
	"os"
	"strings"
)

// proveedoresHeader primera línea opcional del archivo, se omite si aparece.
const proveedoresHeader = "Proveedores"

// ProveedorDirectory lee la lista de proveedores desde un archivo de texto
// externo con un nombre por línea. Se relee en cada llamada, igual que el
// directorio de usuarios.
type ProveedorDirectory struct {
	path string
}

// NewProveedorDirectory construye el directorio sobre la ruta dada.
func NewProveedorDirectory(path string) *ProveedorDirectory {
	return &ProveedorDirectory{path: path}
}

// List devuelve los nombres en el orden del archivo, recortando espacios y
// descartando líneas vacías y la línea de cabecera.
func (d *ProveedorDirectory) List() ([]string, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer lista de proveedores %s: %w", d.path, err)
	}
	var out []string
	for _, linea := range strings.Split(string(data), "\n") {
		nombre := strings.TrimSpace(linea)
		if nombre == "" || nombre == proveedoresHeader {
			continue
		}
		out = append(out, nombre)
	}
	return out, nil
}
