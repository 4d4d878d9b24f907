package dto

// ImagenAdjunta archivo subido en el formulario de registro.
type ImagenAdjunta struct {
	Nombre    string
	Contenido []byte
}

// RegistrarFacturaRequest formulario de registro de una factura.
// Fecha en formato YYYY-MM-DD; se exige al menos una imagen adjunta.
type RegistrarFacturaRequest struct {
	Fecha       string `json:"fecha" form:"fecha"`
	Local       string `json:"local" form:"local"`
	Proveedor   string `json:"proveedor" form:"proveedor"`
	OrdenCompra string `json:"orden_compra" form:"orden_compra"`
	Imagenes    []ImagenAdjunta
}

// RegistrarFacturaResponse resultado del registro.
type RegistrarFacturaResponse struct {
	ID                int `json:"id"`
	ImagenesGuardadas int `json:"imagenes_guardadas"`
}

// FiltrosFacturas filtros opcionales e independientes del listado.
// MR acepta "con" o "sin" y solo aplica a los roles pedidos/proveedores;
// OrdenCompra solo aplica al resto de roles.
type FiltrosFacturas struct {
	Local       string `query:"local"`
	Proveedor   string `query:"proveedor"`
	MR          string `query:"mr"`
	OrdenCompra string `query:"orden_compra"`
}

// FacturaResponse una fila del listado. Los campos MR se omiten para el rol
// default, que no tiene visibilidad del estado MR.
type FacturaResponse struct {
	ID            int      `json:"id"`
	Fecha         string   `json:"fecha"`
	Local         string   `json:"local"`
	Proveedor     string   `json:"proveedor"`
	OrdenCompra   string   `json:"orden_compra"`
	FechaRegistro string   `json:"fecha_registro"`
	Usuario       string   `json:"usuario"`
	MRAsignado    *bool    `json:"mr_asignado,omitempty"`
	NumeroMR      *string  `json:"numero_mr,omitempty"`
	Imagenes      []string `json:"imagenes"`
}

// ResumenMR estadísticas del listado para los roles pedidos/proveedores.
type ResumenMR struct {
	Total int `json:"total"`
	ConMR int `json:"con_mr"`
	SinMR int `json:"sin_mr"`
}

// ListarFacturasResponse listado filtrado en orden de inserción.
type ListarFacturasResponse struct {
	Facturas []FacturaResponse `json:"facturas"`
	Resumen  *ResumenMR        `json:"resumen,omitempty"`
}

// AsignarMRRequest número de MR a asignar a una factura.
type AsignarMRRequest struct {
	NumeroMR string `json:"numero_mr"`
}
