package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/facturas-api/internal/domain"
)

// ZipImagenes empaqueta todos los archivos del directorio de imágenes en un
// ZIP en memoria, plano (sin agrupar por factura). Devuelve los bytes del ZIP
// y la cantidad de archivos incluidos. Un fallo aquí no afecta el ledger ni
// el índice: el error se aísla como domain.ErrArchivo.
func ZipImagenes(dir string) ([]byte, int, error) {
	entradas, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: listar %s: %v", domain.ErrArchivo, dir, err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	n := 0
	for _, entrada := range entradas {
		if entrada.IsDir() {
			continue
		}
		contenido, err := os.ReadFile(filepath.Join(dir, entrada.Name()))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: leer %s: %v", domain.ErrArchivo, entrada.Name(), err)
		}
		fw, err := zw.Create(entrada.Name())
		if err != nil {
			return nil, 0, fmt.Errorf("%w: crear entrada %s: %v", domain.ErrArchivo, entrada.Name(), err)
		}
		if _, err := fw.Write(contenido); err != nil {
			return nil, 0, fmt.Errorf("%w: escribir %s: %v", domain.ErrArchivo, entrada.Name(), err)
		}
		n++
	}
	if err := zw.Close(); err != nil {
		return nil, 0, fmt.Errorf("%w: cerrar archivo: %v", domain.ErrArchivo, err)
	}
	return buf.Bytes(), n, nil
}
