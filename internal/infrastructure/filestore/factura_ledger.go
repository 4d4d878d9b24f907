package filestore

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/facturas-api/internal/domain"
	"github.com/jhoicas/facturas-api/internal/domain/entity"
)

// Formatos de fecha usados en el CSV.
const (
	FechaLayout    = "2006-01-02"
	RegistroLayout = "2006-01-02 15:04:05"
)

// LedgerColumns cabecera del ledger, en el orden persistido.
var LedgerColumns = []string{
	"id", "fecha", "local", "proveedor", "orden_compra",
	"fecha_registro", "usuario", "mr_asignado", "numero_mr",
}

// FacturaLedger persiste el ledger de facturas en un archivo CSV.
// Cada mutación relee la tabla completa, la modifica en memoria y reescribe
// el archivo entero. Un mutex garantiza un solo escritor a la vez dentro del
// proceso; el formato en disco es compatible con archivos históricos a los
// que les falten las columnas de MR.
type FacturaLedger struct {
	mu   sync.Mutex
	path string
}

// NewFacturaLedger abre (o inicializa con solo la cabecera) el archivo CSV.
func NewFacturaLedger(path string) (*FacturaLedger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	l := &FacturaLedger{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := l.save(nil); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// ListAll devuelve todas las facturas en orden de inserción.
func (l *FacturaLedger) ListAll() ([]*entity.Factura, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

// Append agrega una fila con ID = filas actuales + 1 y reescribe el archivo.
func (l *FacturaLedger) Append(fecha time.Time, local, proveedor, ordenCompra, usuario string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.load()
	if err != nil {
		return 0, err
	}
	f := &entity.Factura{
		ID:            len(rows) + 1,
		Fecha:         fecha,
		Local:         local,
		Proveedor:     proveedor,
		OrdenCompra:   ordenCompra,
		FechaRegistro: time.Now(),
		Usuario:       usuario,
	}
	rows = append(rows, f)
	if err := l.save(rows); err != nil {
		return 0, err
	}
	return f.ID, nil
}

// SetMR marca la factura como MR asignado y reescribe el archivo.
func (l *FacturaLedger) SetMR(id int, numeroMR string) error {
	numeroMR = strings.TrimSpace(numeroMR)
	if numeroMR == "" {
		return domain.ErrInvalidInput
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.load()
	if err != nil {
		return err
	}
	for _, f := range rows {
		if f.ID == id {
			f.MRAsignado = true
			f.NumeroMR = numeroMR
			return l.save(rows)
		}
	}
	return domain.ErrNotFound
}

// load lee la tabla completa. El llamador debe tener el mutex.
func (l *FacturaLedger) load() ([]*entity.Factura, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer ledger %s: %w", l.path, err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // archivos históricos pueden tener menos columnas
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsear ledger %s: %w", l.path, err)
	}
	if len(records) <= 1 {
		return nil, nil // vacío o solo cabecera
	}

	rows := make([]*entity.Factura, 0, len(records)-1)
	for i, rec := range records[1:] {
		f, err := parseFacturaRow(rec)
		if err != nil {
			return nil, fmt.Errorf("ledger %s fila %d: %w", l.path, i+2, err)
		}
		rows = append(rows, f)
	}
	return rows, nil
}

// save reescribe el archivo completo. El llamador debe tener el mutex.
func (l *FacturaLedger) save(rows []*entity.Factura) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(LedgerColumns); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistencia, err)
	}
	for _, f := range rows {
		rec := []string{
			strconv.Itoa(f.ID),
			f.Fecha.Format(FechaLayout),
			f.Local,
			f.Proveedor,
			f.OrdenCompra,
			f.FechaRegistro.Format(RegistroLayout),
			f.Usuario,
			strconv.FormatBool(f.MRAsignado),
			f.NumeroMR,
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPersistencia, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistencia, err)
	}
	if err := os.WriteFile(l.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistencia, err)
	}
	return nil
}

func parseFacturaRow(rec []string) (*entity.Factura, error) {
	// Rellenar columnas ausentes en archivos escritos antes de agregar MR.
	for len(rec) < len(LedgerColumns) {
		rec = append(rec, "")
	}

	id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return nil, fmt.Errorf("id inválido %q", rec[0])
	}
	fecha, err := parseFecha(rec[1])
	if err != nil {
		return nil, err
	}
	registro := time.Time{}
	if rec[5] != "" {
		registro, err = time.Parse(RegistroLayout, rec[5])
		if err != nil {
			return nil, fmt.Errorf("fecha_registro inválida %q", rec[5])
		}
	}
	mrAsignado := false
	if rec[7] != "" {
		// pandas escribía "True"/"False"; ParseBool acepta ambas variantes
		mrAsignado, err = strconv.ParseBool(rec[7])
		if err != nil {
			return nil, fmt.Errorf("mr_asignado inválido %q", rec[7])
		}
	}
	return &entity.Factura{
		ID:            id,
		Fecha:         fecha,
		Local:         rec[2],
		Proveedor:     rec[3],
		OrdenCompra:   rec[4],
		FechaRegistro: registro,
		Usuario:       rec[6],
		MRAsignado:    mrAsignado,
		NumeroMR:      rec[8],
	}, nil
}

func parseFecha(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(FechaLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(RegistroLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("fecha inválida %q", s)
}
