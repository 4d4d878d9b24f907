package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/facturas-api/internal/application/auth"
	"github.com/jhoicas/facturas-api/internal/application/dto"
	"github.com/jhoicas/facturas-api/internal/domain"
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login inicia sesión contra el directorio de usuarios.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrCredencialesInvalidas) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario o contraseña incorrectos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Logout cierra la sesión. El token es stateless: el cliente lo descarta y la
// ruta existe para que el cierre quede registrado en el log de peticiones.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// Me devuelve los datos vigentes del usuario autenticado, releyendo el
// directorio externo.
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetUsername(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el usuario ya no existe en el directorio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
