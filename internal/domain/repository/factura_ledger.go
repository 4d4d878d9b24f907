package repository

import (
	"time"

	"github.com/jhoicas/facturas-api/internal/domain/entity"
)

// FacturaLedger define el puerto de persistencia del ledger de facturas.
// Cada mutación es "leer tabla completa, modificar, reescribir tabla completa";
// la implementación debe garantizar un solo escritor a la vez.
type FacturaLedger interface {
	// ListAll devuelve todas las facturas en orden de inserción.
	ListAll() ([]*entity.Factura, error)
	// Append agrega una fila con ID = número de filas actuales + 1 y la
	// persiste. Devuelve el ID asignado o domain.ErrPersistencia.
	Append(fecha time.Time, local, proveedor, ordenCompra, usuario string) (int, error)
	// SetMR marca la factura como MR asignado con el número dado.
	// domain.ErrNotFound si el ID no existe; domain.ErrInvalidInput si el
	// número queda vacío tras recortar espacios.
	SetMR(id int, numeroMR string) error
}

// AdjuntoIndex define el puerto del índice de imágenes adjuntas.
// El índice es de solo agregado: no existe ruta de borrado.
type AdjuntoIndex interface {
	// ListFor devuelve los nombres de archivo de la factura en orden de carga;
	// lista vacía si el ID no tiene entradas.
	ListFor(facturaID int) ([]string, error)
	// Store escribe el contenido en el almacén de imágenes con un nombre
	// generado que incrusta el ID de la factura y un discriminador secuencial,
	// y agrega ese nombre al índice. Devuelve el nombre generado.
	Store(facturaID int, contenido []byte, nombreOriginal string) (string, error)
	// Open devuelve el contenido de un archivo previamente almacenado.
	Open(nombre string) ([]byte, error)
	// Dir devuelve el directorio físico del almacén (para el respaldo ZIP).
	Dir() string
	// RawIndex devuelve el documento del índice tal cual está persistido.
	RawIndex() ([]byte, error)
}
