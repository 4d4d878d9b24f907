package filestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturas-api/internal/domain"
	"github.com/jhoicas/facturas-api/internal/infrastructure/filestore"
)

const usuariosDoc = `{
  "usuarios": [
    {"username": "ana", "password": "clave-ana", "locales": ["Store1"]},
    {"username": "mara", "password": "clave-mara", "rol": "pedidos", "locales": ["Store1", "Store2"]},
    {"username": "pro", "password": "clave-pro", "rol": "proveedores", "locales": ["Store2"]}
  ]
}`

func escribirArchivo(t *testing.T, nombre, contenido string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), nombre)
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o644))
	return path
}

func TestUsuarioDirectory_CredencialesCorrectas(t *testing.T) {
	d := filestore.NewUsuarioDirectory(escribirArchivo(t, "usuarios.json", usuariosDoc))

	u, err := d.FindByCredentials("mara", "clave-mara")
	require.NoError(t, err)
	assert.Equal(t, "pedidos", u.Rol)
	assert.Equal(t, []string{"Store1", "Store2"}, u.Locales)
}

// La comparación es exacta en ambos campos: password ajena no sirve.
func TestUsuarioDirectory_CredencialesIncorrectas(t *testing.T) {
	d := filestore.NewUsuarioDirectory(escribirArchivo(t, "usuarios.json", usuariosDoc))

	_, err := d.FindByCredentials("ana", "clave-mara")
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)

	_, err = d.FindByCredentials("nadie", "clave-ana")
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}

// Una entrada sin campo rol es rol default.
func TestUsuarioDirectory_RolPorDefecto(t *testing.T) {
	d := filestore.NewUsuarioDirectory(escribirArchivo(t, "usuarios.json", usuariosDoc))

	u, err := d.FindByUsername("ana")
	require.NoError(t, err)
	assert.Equal(t, "default", u.RolEfectivo())
}

func TestUsuarioDirectory_ArchivoAusente(t *testing.T) {
	d := filestore.NewUsuarioDirectory(filepath.Join(t.TempDir(), "no-existe.json"))

	_, err := d.FindByCredentials("ana", "clave-ana")
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}

// El directorio se relee en cada acceso: un cambio externo surte efecto
// sin reiniciar la aplicación.
func TestUsuarioDirectory_RelecturaEnCadaAcceso(t *testing.T) {
	path := escribirArchivo(t, "usuarios.json", usuariosDoc)
	d := filestore.NewUsuarioDirectory(path)

	_, err := d.FindByUsername("nuevo")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	actualizado := `{"usuarios": [{"username": "nuevo", "password": "x", "locales": []}]}`
	require.NoError(t, os.WriteFile(path, []byte(actualizado), 0o644))

	u, err := d.FindByUsername("nuevo")
	require.NoError(t, err)
	assert.Equal(t, "nuevo", u.Username)
}

func TestProveedorDirectory_OmiteCabeceraYVacias(t *testing.T) {
	contenido := "Proveedores\nAcme\n\n  Distribuidora Sur  \n\n"
	d := filestore.NewProveedorDirectory(escribirArchivo(t, "proveedores.txt", contenido))

	nombres, err := d.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Distribuidora Sur"}, nombres)
}

func TestProveedorDirectory_ArchivoAusente(t *testing.T) {
	d := filestore.NewProveedorDirectory(filepath.Join(t.TempDir(), "no-existe.txt"))

	nombres, err := d.List()
	require.NoError(t, err)
	assert.Empty(t, nombres)
}
