package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger de la API de facturas.
type Config struct {
	Env   string // development -> consola legible y nivel debug; resto -> JSON y nivel info
	Level string // fuerza el nivel (debug, info, warn, error); vacío = según Env
}

// Logger envuelve zerolog para inyectarlo en main y en el middleware de
// peticiones. Todo evento de negocio (login, registro, asignación de MR,
// respaldos) sale por aquí con campos estructurados.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según el entorno: consola legible en development,
// JSON en el resto.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(nivel(cfg)).With().Timestamp().Logger()

	// Librerías que escriben al logger global de zerolog van al mismo destino
	log.Logger = zl

	return &Logger{zl: zl}
}

// nivel resuelve el nivel efectivo: Level explícito primero, después el
// entorno (development registra debug, el resto info).
func nivel(cfg Config) zerolog.Level {
	switch cfg.Level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	if cfg.Env == "development" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos (p. ej. request_id).
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}
