package facturas

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/facturas-api/internal/application/dto"
	"github.com/jhoicas/facturas-api/internal/domain"
	"github.com/jhoicas/facturas-api/internal/domain/repository"
)

// Formatos de fecha expuestos al usuario: la fecha de factura del formulario
// y la marca de registro en las respuestas.
const (
	fechaLayout    = "2006-01-02"
	registroLayout = "2006-01-02 15:04:05"
)

// RegistrarUseCase caso de uso de registro de facturas: valida el formulario,
// agrega la fila al ledger y almacena las imágenes adjuntas en orden.
type RegistrarUseCase struct {
	ledger   repository.FacturaLedger
	adjuntos repository.AdjuntoIndex
}

// NewRegistrarUseCase construye el caso de uso.
func NewRegistrarUseCase(ledger repository.FacturaLedger, adjuntos repository.AdjuntoIndex) *RegistrarUseCase {
	return &RegistrarUseCase{ledger: ledger, adjuntos: adjuntos}
}

// Registrar valida y registra una factura con sus imágenes.
//
// Si falla el guardado de una imagen intermedia NO hay rollback: la fila del
// ledger y las imágenes ya guardadas quedan; el error se reporta al usuario.
func (uc *RegistrarUseCase) Registrar(sess Session, in dto.RegistrarFacturaRequest) (*dto.RegistrarFacturaResponse, error) {
	if !sess.PuedeRegistrar() {
		return nil, domain.ErrForbidden
	}

	fecha, faltantes := uc.validar(sess, in)
	if len(faltantes) > 0 {
		return nil, &domain.ValidationError{Campos: faltantes}
	}

	id, err := uc.ledger.Append(fecha, in.Local, strings.TrimSpace(in.Proveedor), strings.TrimSpace(in.OrdenCompra), sess.Username)
	if err != nil {
		return nil, err
	}

	guardadas := 0
	for _, img := range in.Imagenes {
		if _, err := uc.adjuntos.Store(id, img.Contenido, img.Nombre); err != nil {
			return nil, fmt.Errorf("factura %d: imagen %q: %w", id, img.Nombre, err)
		}
		guardadas++
	}

	return &dto.RegistrarFacturaResponse{ID: id, ImagenesGuardadas: guardadas}, nil
}

// validar devuelve la fecha parseada y la lista de campos faltantes o inválidos.
func (uc *RegistrarUseCase) validar(sess Session, in dto.RegistrarFacturaRequest) (time.Time, []string) {
	var faltantes []string

	fecha, err := time.Parse(fechaLayout, strings.TrimSpace(in.Fecha))
	if strings.TrimSpace(in.Fecha) == "" || err != nil {
		faltantes = append(faltantes, "fecha")
	}
	if in.Local == "" || !sess.TieneLocal(in.Local) {
		faltantes = append(faltantes, "local")
	}
	if strings.TrimSpace(in.Proveedor) == "" {
		faltantes = append(faltantes, "proveedor")
	}
	if strings.TrimSpace(in.OrdenCompra) == "" {
		faltantes = append(faltantes, "orden_compra")
	}
	if len(in.Imagenes) == 0 {
		faltantes = append(faltantes, "imagenes")
	}
	return fecha, faltantes
}
