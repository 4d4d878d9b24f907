package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrPersistencia          = errors.New("no se pudo escribir el almacenamiento")
	ErrArchivo               = errors.New("no se pudo generar el archivo comprimido")
)

// ValidationError lista los campos faltantes o inválidos de un formulario.
// Se muestra al usuario tal cual; no hay reintento automático.
type ValidationError struct {
	Campos []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campos faltantes o inválidos: %s", strings.Join(e.Campos, ", "))
}

// Is permite errors.Is(err, ErrInvalidInput) sobre errores de validación.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
