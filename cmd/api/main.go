package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/facturas-api/internal/application/auth"
	"github.com/jhoicas/facturas-api/internal/application/facturas"
	"github.com/jhoicas/facturas-api/internal/infrastructure/filestore"
	httpRouter "github.com/jhoicas/facturas-api/internal/interfaces/http"
	"github.com/jhoicas/facturas-api/pkg/config"
	"github.com/jhoicas/facturas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	usuarios := filestore.NewUsuarioDirectory(cfg.Storage.UsuariosFile)
	proveedores := filestore.NewProveedorDirectory(cfg.Storage.ProveedoresFile)

	ledger, err := filestore.NewFacturaLedger(cfg.Storage.FacturasFile())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir ledger de facturas")
	}
	adjuntos, err := filestore.NewAdjuntoIndex(cfg.Storage.IndiceFile(), cfg.Storage.ImagenesDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir índice de imágenes")
	}

	authUC := auth.NewAuthUseCase(usuarios, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	registrarUC := facturas.NewRegistrarUseCase(ledger, adjuntos)
	consultarUC := facturas.NewConsultarUseCase(ledger, adjuntos)
	exportUC := facturas.NewExportUseCase(ledger, adjuntos)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    64 << 20, // formularios con varias imágenes adjuntas
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Registrar:   registrarUC,
		Consultar:   consultarUC,
		Export:      exportUC,
		Proveedores: proveedores,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
