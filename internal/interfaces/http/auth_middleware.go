package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/facturas-api/internal/application/dto"
	"github.com/jhoicas/facturas-api/internal/application/facturas"
	"github.com/jhoicas/facturas-api/pkg/jwt"
)

// Locals keys para los datos de sesión en Fiber.
const (
	LocalUsername = "username"
	LocalRol      = "rol"
	LocalLocales  = "locales"
)

// AuthMiddleware valida el Bearer Token JWT y extrae username, rol y locales a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		username, rol, locales, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsername, username)
		c.Locals(LocalRol, rol)
		c.Locals(LocalLocales, locales)
		return c.Next()
	}
}

// RequireRole devuelve un middleware que autoriza solo a los roles indicados.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRol).
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := GetRol(c)
		if rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin rol"})
		}
		for _, allowed := range allowedRoles {
			if rol == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a esta operación"})
	}
}

// GetUsername devuelve el username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRol devuelve el rol del contexto (después del middleware de auth).
func GetRol(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetLocales devuelve los locales asignados del contexto.
func GetLocales(c *fiber.Ctx) []string {
	v := c.Locals(LocalLocales)
	if v == nil {
		return nil
	}
	s, _ := v.([]string)
	return s
}

// GetSession arma la sesión explícita que consumen los casos de uso.
func GetSession(c *fiber.Ctx) facturas.Session {
	return facturas.Session{
		Username: GetUsername(c),
		Rol:      GetRol(c),
		Locales:  GetLocales(c),
	}
}
