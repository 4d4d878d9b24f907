package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/facturas-api/internal/domain/entity"
	"github.com/jhoicas/facturas-api/internal/infrastructure/filestore"
	"github.com/xuri/excelize/v2"
)

// CSVLedger serializa el ledger completo como texto tabular, con la misma
// cabecera y los mismos formatos que el archivo persistido.
func CSVLedger(rows []*entity.Factura) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(filestore.LedgerColumns); err != nil {
		return nil, fmt.Errorf("serializar ledger: %w", err)
	}
	for _, f := range rows {
		if err := w.Write(ledgerRecord(f)); err != nil {
			return nil, fmt.Errorf("serializar ledger: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("serializar ledger: %w", err)
	}
	return buf.Bytes(), nil
}

// XLSXLedger serializa el ledger como libro de Excel con una hoja "Facturas".
// Mismas columnas que el CSV; pensado para quien abre el respaldo directo en
// una hoja de cálculo.
func XLSXLedger(rows []*entity.Factura) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const hoja = "Facturas"
	if err := f.SetSheetName("Sheet1", hoja); err != nil {
		return nil, fmt.Errorf("generar xlsx: %w", err)
	}

	for col, titulo := range filestore.LedgerColumns {
		celda, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("generar xlsx: %w", err)
		}
		if err := f.SetCellValue(hoja, celda, titulo); err != nil {
			return nil, fmt.Errorf("generar xlsx: %w", err)
		}
	}
	for i, fac := range rows {
		for col, valor := range ledgerRecord(fac) {
			celda, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("generar xlsx: %w", err)
			}
			if err := f.SetCellValue(hoja, celda, valor); err != nil {
				return nil, fmt.Errorf("generar xlsx: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("generar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// ledgerRecord devuelve la fila en el mismo orden de LedgerColumns.
func ledgerRecord(f *entity.Factura) []string {
	return []string{
		strconv.Itoa(f.ID),
		f.Fecha.Format(filestore.FechaLayout),
		f.Local,
		f.Proveedor,
		f.OrdenCompra,
		f.FechaRegistro.Format(filestore.RegistroLayout),
		f.Usuario,
		strconv.FormatBool(f.MRAsignado),
		f.NumeroMR,
	}
}
