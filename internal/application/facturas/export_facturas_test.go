package facturas_test

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturas-api/internal/application/facturas"
)

// Los tres respaldos salen del mismo estado y ninguno lo muta.
func TestExport_Respaldos(t *testing.T) {
	ledger, adjuntos := nuevoAlmacen(t)
	_, err := ledger.Append(time.Now(), "Store1", "Acme", "PO-100", "ana")
	require.NoError(t, err)
	_, err = adjuntos.Store(1, []byte("jpg"), "inv.jpg")
	require.NoError(t, err)

	uc := facturas.NewExportUseCase(ledger, adjuntos)

	nombre, data, err := uc.CSV()
	require.NoError(t, err)
	assert.Regexp(t, `^facturas_backup_\d{8}_\d{6}\.csv$`, nombre)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "cabecera más una fila")

	nombre, data, err = uc.IndiceJSON()
	require.NoError(t, err)
	assert.Regexp(t, `^imagenes_index_\d{8}_\d{6}\.json$`, nombre)
	var indice map[string][]string
	require.NoError(t, json.Unmarshal(data, &indice))
	assert.Equal(t, []string{"factura_1_0_inv.jpg"}, indice["1"])

	nombre, data, cantidad, err := uc.ZIP()
	require.NoError(t, err)
	assert.Regexp(t, `^imagenes_backup_\d{8}_\d{6}\.zip$`, nombre)
	assert.Equal(t, 1, cantidad)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, "factura_1_0_inv.jpg", zr.File[0].Name)

	nombre, data, err = uc.XLSX()
	require.NoError(t, err)
	assert.Regexp(t, `^facturas_backup_\d{8}_\d{6}\.xlsx$`, nombre)
	assert.NotEmpty(t, data)

	// nada de lo anterior debe haber mutado el ledger
	rows, err := ledger.ListAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
