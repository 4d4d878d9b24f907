package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/facturas-api/internal/application/dto"
	"github.com/jhoicas/facturas-api/internal/application/facturas"
	"github.com/jhoicas/facturas-api/internal/domain"
)

// ExportHandler respaldos bajo demanda (solo rol pedidos, vía RequireRole).
type ExportHandler struct {
	uc *facturas.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *facturas.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// FacturasCSV descarga el ledger completo como CSV.
// GET /api/export/facturas.csv
func (h *ExportHandler) FacturasCSV(c *fiber.Ctx) error {
	nombre, data, err := h.uc.CSV()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return enviarDescarga(c, nombre, data)
}

// FacturasXLSX descarga el ledger completo como libro de Excel.
// GET /api/export/facturas.xlsx
func (h *ExportHandler) FacturasXLSX(c *fiber.Ctx) error {
	nombre, data, err := h.uc.XLSX()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return enviarDescarga(c, nombre, data)
}

// IndiceJSON descarga el índice de imágenes tal cual está persistido.
// GET /api/export/imagenes.json
func (h *ExportHandler) IndiceJSON(c *fiber.Ctx) error {
	nombre, data, err := h.uc.IndiceJSON()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return enviarDescarga(c, nombre, data)
}

// ImagenesZIP descarga todas las imágenes del almacén en un ZIP plano.
// Un fallo al empaquetar se reporta sin tocar el ledger ni el índice.
// GET /api/export/imagenes.zip
func (h *ExportHandler) ImagenesZIP(c *fiber.Ctx) error {
	nombre, data, cantidad, err := h.uc.ZIP()
	if err != nil {
		if errors.Is(err, domain.ErrArchivo) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "ARCHIVE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("X-Imagenes-Incluidas", strconv.Itoa(cantidad))
	return enviarDescarga(c, nombre, data)
}
