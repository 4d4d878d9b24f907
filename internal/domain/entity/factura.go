package entity

import "time"

// Factura representa una fila del ledger de facturas de proveedor.
// El ID es un entero secuencial asignado por el ledger al insertar
// (conteo de filas + 1); NumeroMR queda vacío hasta que el rol pedidos
// lo asigna, único campo mutable tras la creación junto con MRAsignado.
type Factura struct {
	ID            int
	Fecha         time.Time // fecha de la factura (solo día)
	Local         string
	Proveedor     string
	OrdenCompra   string
	FechaRegistro time.Time // momento de captura en el sistema
	Usuario       string    // username que registró la factura
	MRAsignado    bool
	NumeroMR      string
}
