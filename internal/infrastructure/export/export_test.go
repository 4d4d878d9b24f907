package export_test

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/facturas-api/internal/domain/entity"
	"github.com/jhoicas/facturas-api/internal/infrastructure/export"
	"github.com/jhoicas/facturas-api/internal/infrastructure/filestore"
)

func facturasDePrueba(t *testing.T) []*entity.Factura {
	t.Helper()
	fecha, err := time.Parse(filestore.FechaLayout, "2024-01-10")
	require.NoError(t, err)
	registro, err := time.Parse(filestore.RegistroLayout, "2024-01-10 09:15:00")
	require.NoError(t, err)
	return []*entity.Factura{
		{ID: 1, Fecha: fecha, Local: "Store1", Proveedor: "Acme", OrdenCompra: "PO-100", FechaRegistro: registro, Usuario: "ana"},
		{ID: 2, Fecha: fecha, Local: "Store2", Proveedor: "Distribuidora Sur", OrdenCompra: "PO-101", FechaRegistro: registro, Usuario: "ana", MRAsignado: true, NumeroMR: "MR-55"},
	}
}

func TestCSVLedger_CabeceraYFilas(t *testing.T) {
	data, err := export.CSVLedger(facturasDePrueba(t))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, filestore.LedgerColumns, records[0])
	assert.Equal(t, []string{"1", "2024-01-10", "Store1", "Acme", "PO-100", "2024-01-10 09:15:00", "ana", "false", ""}, records[1])
	assert.Equal(t, "MR-55", records[2][8])
}

func TestCSVLedger_SinFilas(t *testing.T) {
	data, err := export.CSVLedger(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "un ledger vacío exporta solo la cabecera")
}

func TestXLSXLedger_MismasColumnas(t *testing.T) {
	data, err := export.XLSXLedger(facturasDePrueba(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Facturas")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, filestore.LedgerColumns, rows[0])
	assert.Equal(t, "Acme", rows[1][3])
	assert.Equal(t, "MR-55", rows[2][8])
}

// El ZIP es plano: cada archivo del almacén aparece con su nombre, sin carpetas.
func TestZipImagenes_EmpaquetaTodo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "factura_1_0_a.jpg"), []byte("aa"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "factura_2_1_b.pdf"), []byte("bb"), 0o644))

	data, cantidad, err := export.ZipImagenes(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, cantidad)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	porNombre := map[string]string{}
	for _, zf := range zr.File {
		rc, err := zf.Open()
		require.NoError(t, err)
		contenido, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		porNombre[zf.Name] = string(contenido)
	}
	assert.Equal(t, "aa", porNombre["factura_1_0_a.jpg"])
	assert.Equal(t, "bb", porNombre["factura_2_1_b.pdf"])
}

func TestZipImagenes_DirectorioVacio(t *testing.T) {
	data, cantidad, err := export.ZipImagenes(t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, cantidad)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Empty(t, zr.File, "sin imágenes el ZIP es válido y vacío")
}
