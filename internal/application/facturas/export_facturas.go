package facturas

import (
	"fmt"
	"time"

	"github.com/jhoicas/facturas-api/internal/domain/repository"
	"github.com/jhoicas/facturas-api/internal/infrastructure/export"
)

// ExportUseCase respaldo bajo demanda del ledger, el índice de imágenes y las
// imágenes crudas. Solo lectura: ningún export muta estado, y un fallo al
// generar el ZIP queda aislado a esa acción.
type ExportUseCase struct {
	ledger   repository.FacturaLedger
	adjuntos repository.AdjuntoIndex
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(ledger repository.FacturaLedger, adjuntos repository.AdjuntoIndex) *ExportUseCase {
	return &ExportUseCase{ledger: ledger, adjuntos: adjuntos}
}

// CSV devuelve el ledger completo como CSV y el nombre de descarga sugerido.
func (uc *ExportUseCase) CSV() (nombre string, data []byte, err error) {
	rows, err := uc.ledger.ListAll()
	if err != nil {
		return "", nil, err
	}
	data, err = export.CSVLedger(rows)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("facturas_backup_%s.csv", timestamp()), data, nil
}

// XLSX devuelve el ledger completo como libro de Excel.
func (uc *ExportUseCase) XLSX() (nombre string, data []byte, err error) {
	rows, err := uc.ledger.ListAll()
	if err != nil {
		return "", nil, err
	}
	data, err = export.XLSXLedger(rows)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("facturas_backup_%s.xlsx", timestamp()), data, nil
}

// IndiceJSON devuelve el índice de imágenes tal cual está persistido.
func (uc *ExportUseCase) IndiceJSON() (nombre string, data []byte, err error) {
	data, err = uc.adjuntos.RawIndex()
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("imagenes_index_%s.json", timestamp()), data, nil
}

// ZIP empaqueta todas las imágenes del almacén en un ZIP plano.
// Devuelve además la cantidad de imágenes incluidas.
func (uc *ExportUseCase) ZIP() (nombre string, data []byte, cantidad int, err error) {
	data, cantidad, err = export.ZipImagenes(uc.adjuntos.Dir())
	if err != nil {
		return "", nil, 0, err
	}
	return fmt.Sprintf("imagenes_backup_%s.zip", timestamp()), data, cantidad, nil
}

func timestamp() string {
	return time.Now().Format("20060102_150405")
}
