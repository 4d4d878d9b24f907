package facturas

import (
	"strings"

	"github.com/jhoicas/facturas-api/internal/application/dto"
	"github.com/jhoicas/facturas-api/internal/domain"
	"github.com/jhoicas/facturas-api/internal/domain/entity"
	"github.com/jhoicas/facturas-api/internal/domain/repository"
)

// Valores del filtro de estado MR.
const (
	FiltroConMR = "con"
	FiltroSinMR = "sin"
)

// ConsultarUseCase caso de uso de revisión: lista facturas restringidas a los
// locales de la sesión con filtros opcionales, y asigna números de MR.
type ConsultarUseCase struct {
	ledger   repository.FacturaLedger
	adjuntos repository.AdjuntoIndex
}

// NewConsultarUseCase construye el caso de uso.
func NewConsultarUseCase(ledger repository.FacturaLedger, adjuntos repository.AdjuntoIndex) *ConsultarUseCase {
	return &ConsultarUseCase{ledger: ledger, adjuntos: adjuntos}
}

// Listar devuelve las facturas visibles para la sesión, en orden de inserción.
//
// Primero se restringe a los locales asignados; después se aplican los filtros
// opcionales, cada uno independiente de los demás: local exacto, proveedor por
// subcadena (sin distinguir mayúsculas), estado MR (solo roles con visibilidad
// MR) u orden de compra por subcadena (resto de roles). Para pedidos y
// proveedores se incluye además el resumen de MR sobre el conjunto visible.
func (uc *ConsultarUseCase) Listar(sess Session, filtros dto.FiltrosFacturas) (*dto.ListarFacturasResponse, error) {
	todas, err := uc.ledger.ListAll()
	if err != nil {
		return nil, err
	}

	visibles := make([]*entity.Factura, 0, len(todas))
	for _, f := range todas {
		if sess.TieneLocal(f.Local) {
			visibles = append(visibles, f)
		}
	}

	out := &dto.ListarFacturasResponse{Facturas: []dto.FacturaResponse{}}
	if sess.VeMR() {
		resumen := &dto.ResumenMR{Total: len(visibles)}
		for _, f := range visibles {
			if f.MRAsignado {
				resumen.ConMR++
			} else {
				resumen.SinMR++
			}
		}
		out.Resumen = resumen
	}

	for _, f := range visibles {
		if !uc.pasaFiltros(sess, f, filtros) {
			continue
		}
		imagenes, err := uc.adjuntos.ListFor(f.ID)
		if err != nil {
			return nil, err
		}
		out.Facturas = append(out.Facturas, toFacturaResponse(f, imagenes, sess.VeMR()))
	}
	return out, nil
}

// AsignarMR asigna el número de MR a una factura. Solo el rol pedidos puede
// mutar el estado MR; proveedores lo ve pero nunca lo asigna.
func (uc *ConsultarUseCase) AsignarMR(sess Session, id int, numeroMR string) error {
	if !sess.PuedeAsignarMR() {
		return domain.ErrForbidden
	}
	return uc.ledger.SetMR(id, strings.TrimSpace(numeroMR))
}

// ImagenesDe devuelve los nombres de imagen de una factura visible para la
// sesión; domain.ErrNotFound si la factura no existe o su local no es visible.
func (uc *ConsultarUseCase) ImagenesDe(sess Session, id int) ([]string, error) {
	todas, err := uc.ledger.ListAll()
	if err != nil {
		return nil, err
	}
	for _, f := range todas {
		if f.ID == id {
			if !sess.TieneLocal(f.Local) {
				return nil, domain.ErrNotFound
			}
			return uc.adjuntos.ListFor(id)
		}
	}
	return nil, domain.ErrNotFound
}

// AbrirImagen devuelve el contenido de una imagen de la factura, validando
// que el nombre esté indexado bajo ese ID y que el local sea visible.
func (uc *ConsultarUseCase) AbrirImagen(sess Session, id int, nombre string) ([]byte, error) {
	imagenes, err := uc.ImagenesDe(sess, id)
	if err != nil {
		return nil, err
	}
	for _, n := range imagenes {
		if n == nombre {
			return uc.adjuntos.Open(nombre)
		}
	}
	return nil, domain.ErrNotFound
}

func (uc *ConsultarUseCase) pasaFiltros(sess Session, f *entity.Factura, filtros dto.FiltrosFacturas) bool {
	if filtros.Local != "" && f.Local != filtros.Local {
		return false
	}
	if filtros.Proveedor != "" && !contieneInsensible(f.Proveedor, filtros.Proveedor) {
		return false
	}
	if sess.VeMR() {
		switch filtros.MR {
		case FiltroConMR:
			if !f.MRAsignado {
				return false
			}
		case FiltroSinMR:
			if f.MRAsignado {
				return false
			}
		}
	} else if filtros.OrdenCompra != "" && !contieneInsensible(f.OrdenCompra, filtros.OrdenCompra) {
		return false
	}
	return true
}

func contieneInsensible(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func toFacturaResponse(f *entity.Factura, imagenes []string, incluirMR bool) dto.FacturaResponse {
	if imagenes == nil {
		imagenes = []string{}
	}
	r := dto.FacturaResponse{
		ID:            f.ID,
		Fecha:         f.Fecha.Format(fechaLayout),
		Local:         f.Local,
		Proveedor:     f.Proveedor,
		OrdenCompra:   f.OrdenCompra,
		FechaRegistro: f.FechaRegistro.Format(registroLayout),
		Usuario:       f.Usuario,
		Imagenes:      imagenes,
	}
	if incluirMR {
		asignado := f.MRAsignado
		numero := f.NumeroMR
		r.MRAsignado = &asignado
		r.NumeroMR = &numero
	}
	return r
}
