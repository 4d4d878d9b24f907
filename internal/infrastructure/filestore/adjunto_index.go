package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/jhoicas/facturas-api/internal/domain"
)

// AdjuntoIndex persiste el índice de imágenes adjuntas en un documento JSON
// que mapea el ID de factura (como texto) a la lista ordenada de nombres de
// archivo, más un directorio con los archivos crudos. El índice es de solo
// agregado y se reescribe completo en cada Store, con el mismo mutex de un
// solo escritor que el ledger.
type AdjuntoIndex struct {
	mu        sync.Mutex
	indexPath string
	dir       string
}

// NewAdjuntoIndex abre (o inicializa vacío) el índice y crea el directorio de imágenes.
func NewAdjuntoIndex(indexPath, dir string) (*AdjuntoIndex, error) {
	if err := os.MkdirAll(filepath.Dir(indexPath), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de imágenes: %w", err)
	}
	idx := &AdjuntoIndex{indexPath: indexPath, dir: dir}
	if _, err := os.Stat(indexPath); os.IsNotExist(err) {
		if err := idx.save(map[string][]string{}); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// ListFor devuelve los nombres de archivo de la factura en orden de carga.
func (x *AdjuntoIndex) ListFor(facturaID int) ([]string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	index, err := x.load()
	if err != nil {
		return nil, err
	}
	return index[strconv.Itoa(facturaID)], nil
}

// Store escribe el contenido en el almacén con el nombre generado
// factura_{id}_{n}_{original}, donde n es el conteo actual de archivos del
// directorio (0-based), y agrega el nombre al índice.
func (x *AdjuntoIndex) Store(facturaID int, contenido []byte, nombreOriginal string) (string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	entradas, err := os.ReadDir(x.dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPersistencia, err)
	}
	nombre := fmt.Sprintf("factura_%d_%d_%s", facturaID, len(entradas), filepath.Base(nombreOriginal))

	if err := os.WriteFile(filepath.Join(x.dir, nombre), contenido, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPersistencia, err)
	}

	index, err := x.load()
	if err != nil {
		return "", err
	}
	key := strconv.Itoa(facturaID)
	index[key] = append(index[key], nombre)
	if err := x.save(index); err != nil {
		return "", err
	}
	return nombre, nil
}

// Open devuelve el contenido de un archivo previamente almacenado.
func (x *AdjuntoIndex) Open(nombre string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(x.dir, filepath.Base(nombre)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("leer imagen %s: %w", nombre, err)
	}
	return data, nil
}

// Dir devuelve el directorio físico del almacén de imágenes.
func (x *AdjuntoIndex) Dir() string {
	return x.dir
}

// RawIndex devuelve el documento JSON del índice tal cual está en disco.
func (x *AdjuntoIndex) RawIndex() ([]byte, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	data, err := os.ReadFile(x.indexPath)
	if err != nil {
		return nil, fmt.Errorf("leer índice %s: %w", x.indexPath, err)
	}
	return data, nil
}

// load lee el índice completo. El llamador debe tener el mutex.
func (x *AdjuntoIndex) load() (map[string][]string, error) {
	data, err := os.ReadFile(x.indexPath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]string{}, nil
		}
		return nil, fmt.Errorf("leer índice %s: %w", x.indexPath, err)
	}
	index := map[string][]string{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &index); err != nil {
			return nil, fmt.Errorf("parsear índice %s: %w", x.indexPath, err)
		}
	}
	return index, nil
}

// save reescribe el índice completo. El llamador debe tener el mutex.
func (x *AdjuntoIndex) save(index map[string][]string) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistencia, err)
	}
	if err := os.WriteFile(x.indexPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistencia, err)
	}
	return nil
}
