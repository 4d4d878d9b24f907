package http

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/facturas-api/internal/application/dto"
	"github.com/jhoicas/facturas-api/internal/application/facturas"
	"github.com/jhoicas/facturas-api/internal/domain"
)

// maxImagenBytes tope por imagen adjunta (las fotos de facturas son chicas).
const maxImagenBytes = 20 << 20 // 20 MiB

// FacturaHandler maneja registro, revisión y asignación de MR.
type FacturaHandler struct {
	registrar *facturas.RegistrarUseCase
	consultar *facturas.ConsultarUseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(registrar *facturas.RegistrarUseCase, consultar *facturas.ConsultarUseCase) *FacturaHandler {
	return &FacturaHandler{registrar: registrar, consultar: consultar}
}

// Registrar crea una factura con sus imágenes adjuntas.
// POST /api/facturas (multipart: fecha, local, proveedor, orden_compra, imagenes[])
func (h *FacturaHandler) Registrar(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se espera un formulario multipart"})
	}

	in := dto.RegistrarFacturaRequest{
		Fecha:       primerValor(form.Value["fecha"]),
		Local:       primerValor(form.Value["local"]),
		Proveedor:   primerValor(form.Value["proveedor"]),
		OrdenCompra: primerValor(form.Value["orden_compra"]),
	}
	for _, fh := range form.File["imagenes"] {
		if fh.Size > maxImagenBytes {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: fmt.Sprintf("imagen %s supera el tamaño máximo", fh.Filename)})
		}
		contenido, err := leerArchivo(fh)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer la imagen " + fh.Filename})
		}
		in.Imagenes = append(in.Imagenes, dto.ImagenAdjunta{Nombre: fh.Filename, Contenido: contenido})
	}

	out, err := h.registrar.Registrar(GetSession(c), in)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Error()})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "este rol no registra facturas"})
		}
		if errors.Is(err, domain.ErrPersistencia) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar devuelve las facturas visibles con filtros opcionales.
// GET /api/facturas?local=&proveedor=&mr=&orden_compra=
func (h *FacturaHandler) Listar(c *fiber.Ctx) error {
	var filtros dto.FiltrosFacturas
	if err := c.QueryParser(&filtros); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	out, err := h.consultar.Listar(GetSession(c), filtros)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AsignarMR asigna el número de MR a una factura (solo rol pedidos).
// PUT /api/facturas/:id/mr
func (h *FacturaHandler) AsignarMR(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.AsignarMRRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.consultar.AsignarMR(GetSession(c), id, in.NumeroMR); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el rol pedidos asigna MR"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero_mr no puede estar vacío"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		if errors.Is(err, domain.ErrPersistencia) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"id": id, "mr_asignado": true})
}

// DescargarImagen entrega una imagen adjunta de una factura visible.
// GET /api/facturas/:id/imagenes/:nombre
func (h *FacturaHandler) DescargarImagen(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	nombre, err := urlDecode(c.Params("nombre"))
	if err != nil || nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre inválido"})
	}
	data, err := h.consultar.AbrirImagen(GetSession(c), id, nombre)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "imagen no encontrada para esa factura"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return enviarDescarga(c, nombre, data)
}

func primerValor(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// enviarDescarga envía bytes como descarga con el content-type de la extensión.
func enviarDescarga(c *fiber.Ctx, nombre string, data []byte) error {
	ct := mime.TypeByExtension(filepath.Ext(nombre))
	if ct == "" {
		ct = "application/octet-stream"
	}
	c.Set(fiber.HeaderContentType, ct)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", nombre))
	return c.Send(data)
}
