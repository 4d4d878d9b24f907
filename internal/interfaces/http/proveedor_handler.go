package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/facturas-api/internal/application/dto"
	"github.com/jhoicas/facturas-api/internal/domain/repository"
)

// ProveedorHandler entrega la lista de proveedores para el formulario de registro.
type ProveedorHandler struct {
	proveedores repository.ProveedorDirectory
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(proveedores repository.ProveedorDirectory) *ProveedorHandler {
	return &ProveedorHandler{proveedores: proveedores}
}

// List devuelve los nombres de proveedores en el orden del archivo.
// GET /api/proveedores
func (h *ProveedorHandler) List(c *fiber.Ctx) error {
	nombres, err := h.proveedores.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if nombres == nil {
		nombres = []string{}
	}
	return c.JSON(fiber.Map{"proveedores": nombres})
}
