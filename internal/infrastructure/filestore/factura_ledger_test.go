package filestore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturas-api/internal/domain"
	"github.com/jhoicas/facturas-api/internal/infrastructure/filestore"
)

func nuevoLedger(t *testing.T) *filestore.FacturaLedger {
	t.Helper()
	l, err := filestore.NewFacturaLedger(filepath.Join(t.TempDir(), "data", "facturas.csv"))
	require.NoError(t, err, "debe inicializar el CSV con cabecera")
	return l
}

func fechaTest(t *testing.T, s string) time.Time {
	t.Helper()
	f, err := time.Parse(filestore.FechaLayout, s)
	require.NoError(t, err)
	return f
}

// N appends sin escritores concurrentes producen exactamente N filas con
// ids 1..N en orden de llamada.
func TestAppend_IDsSecuenciales(t *testing.T) {
	l := nuevoLedger(t)

	for i := 1; i <= 5; i++ {
		id, err := l.Append(fechaTest(t, "2024-01-10"), "Store1", "Acme", "PO-100", "ana")
		require.NoError(t, err)
		assert.Equal(t, i, id, "el id debe ser conteo de filas + 1")
	}

	rows, err := l.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i, f := range rows {
		assert.Equal(t, i+1, f.ID, "orden de inserción preservado")
		assert.False(t, f.MRAsignado, "una factura nueva nace sin MR")
		assert.Empty(t, f.NumeroMR)
	}
}

func TestAppend_PersisteCampos(t *testing.T) {
	l := nuevoLedger(t)

	id, err := l.Append(fechaTest(t, "2024-01-10"), "Store1", "Acme", "PO-100", "ana")
	require.NoError(t, err)

	rows, err := l.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	f := rows[0]
	assert.Equal(t, id, f.ID)
	assert.Equal(t, "2024-01-10", f.Fecha.Format(filestore.FechaLayout))
	assert.Equal(t, "Store1", f.Local)
	assert.Equal(t, "Acme", f.Proveedor)
	assert.Equal(t, "PO-100", f.OrdenCompra)
	assert.Equal(t, "ana", f.Usuario)
	assert.False(t, f.FechaRegistro.IsZero(), "debe sellar la fecha de registro")
}

func TestSetMR_ActualizaFila(t *testing.T) {
	l := nuevoLedger(t)
	id, err := l.Append(fechaTest(t, "2024-01-10"), "Store1", "Acme", "PO-100", "ana")
	require.NoError(t, err)

	require.NoError(t, l.SetMR(id, "MR-55"))

	rows, err := l.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].MRAsignado)
	assert.Equal(t, "MR-55", rows[0].NumeroMR)
}

func TestSetMR_RecortaEspacios(t *testing.T) {
	l := nuevoLedger(t)
	id, err := l.Append(fechaTest(t, "2024-01-10"), "Store1", "Acme", "PO-100", "ana")
	require.NoError(t, err)

	require.NoError(t, l.SetMR(id, "  MR-7  "))

	rows, err := l.ListAll()
	require.NoError(t, err)
	assert.Equal(t, "MR-7", rows[0].NumeroMR)
}

// SetMR sobre un id inexistente falla con ErrNotFound y no toca el ledger.
func TestSetMR_IDInexistente(t *testing.T) {
	l := nuevoLedger(t)
	_, err := l.Append(fechaTest(t, "2024-01-10"), "Store1", "Acme", "PO-100", "ana")
	require.NoError(t, err)

	err = l.SetMR(99, "MR-55")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	rows, err := l.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].MRAsignado, "un SetMR fallido no debe modificar nada")
}

func TestSetMR_NumeroVacio(t *testing.T) {
	l := nuevoLedger(t)
	id, err := l.Append(fechaTest(t, "2024-01-10"), "Store1", "Acme", "PO-100", "ana")
	require.NoError(t, err)

	assert.ErrorIs(t, l.SetMR(id, "   "), domain.ErrInvalidInput)
}

// Reabrir el ledger sobre el mismo archivo debe ver lo persistido.
func TestLedger_SobreviveReapertura(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facturas.csv")
	l, err := filestore.NewFacturaLedger(path)
	require.NoError(t, err)
	_, err = l.Append(fechaTest(t, "2024-03-01"), "Store2", "Distribuidora Sur", "PO-7", "mara")
	require.NoError(t, err)

	l2, err := filestore.NewFacturaLedger(path)
	require.NoError(t, err)
	rows, err := l2.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Distribuidora Sur", rows[0].Proveedor)
}

// Archivos escritos antes de agregar las columnas MR (y con booleanos estilo
// pandas) deben seguir siendo legibles.
func TestLedger_ArchivoHistoricoSinColumnasMR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facturas.csv")
	historico := "id,fecha,local,proveedor,orden_compra,fecha_registro,usuario\n" +
		"1,2023-12-01,Store1,Acme,PO-1,2023-12-01 09:30:00,ana\n"
	require.NoError(t, os.WriteFile(path, []byte(historico), 0o644))

	l, err := filestore.NewFacturaLedger(path)
	require.NoError(t, err)
	rows, err := l.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].MRAsignado)
	assert.Empty(t, rows[0].NumeroMR)
}

func TestLedger_BooleanosEstiloPandas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facturas.csv")
	historico := "id,fecha,local,proveedor,orden_compra,fecha_registro,usuario,mr_asignado,numero_mr\n" +
		"1,2023-12-01,Store1,Acme,PO-1,2023-12-01 09:30:00,ana,True,MR-1\n" +
		"2,2023-12-02,Store1,Acme,PO-2,2023-12-02 09:30:00,ana,False,\n"
	require.NoError(t, os.WriteFile(path, []byte(historico), 0o644))

	l, err := filestore.NewFacturaLedger(path)
	require.NoError(t, err)
	rows, err := l.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].MRAsignado)
	assert.Equal(t, "MR-1", rows[0].NumeroMR)
	assert.False(t, rows[1].MRAsignado)
}
