package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/facturas-api/internal/application/auth"
	"github.com/jhoicas/facturas-api/internal/application/facturas"
	"github.com/jhoicas/facturas-api/internal/domain/entity"
	"github.com/jhoicas/facturas-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Registrar   *facturas.RegistrarUseCase
	Consultar   *facturas.ConsultarUseCase
	Export      *facturas.ExportUseCase
	Proveedores repository.ProveedorDirectory
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout requiere sesión)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Proveedores (para el formulario de registro)
	proveedorHandler := NewProveedorHandler(deps.Proveedores)
	protected.Get("/proveedores", proveedorHandler.List)

	// Facturas: registro, revisión, asignación de MR, descarga de imágenes.
	// El registro se bloquea para pedidos/proveedores dentro del caso de uso
	// (la regla es "todo rol salvo esos dos", no una lista blanca de roles).
	facturaHandler := NewFacturaHandler(deps.Registrar, deps.Consultar)
	facturasGroup := protected.Group("/facturas")
	facturasGroup.Post("/", facturaHandler.Registrar)
	facturasGroup.Get("/", facturaHandler.Listar)
	facturasGroup.Put("/:id/mr", RequireRole(entity.RolPedidos), facturaHandler.AsignarMR)
	facturasGroup.Get("/:id/imagenes/:nombre", facturaHandler.DescargarImagen)

	// Respaldos (solo pedidos)
	exportHandler := NewExportHandler(deps.Export)
	exportGroup := protected.Group("/export", RequireRole(entity.RolPedidos))
	exportGroup.Get("/facturas.csv", exportHandler.FacturasCSV)
	exportGroup.Get("/facturas.xlsx", exportHandler.FacturasXLSX)
	exportGroup.Get("/imagenes.json", exportHandler.IndiceJSON)
	exportGroup.Get("/imagenes.zip", exportHandler.ImagenesZIP)
}
