package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// El nivel explícito manda; sin él, development registra debug y el resto info.
func TestNivelEfectivo(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, nivel(Config{Env: "development"}))
	assert.Equal(t, zerolog.InfoLevel, nivel(Config{Env: "production"}))
	assert.Equal(t, zerolog.InfoLevel, nivel(Config{}))
	assert.Equal(t, zerolog.WarnLevel, nivel(Config{Env: "development", Level: "warn"}))
	assert.Equal(t, zerolog.ErrorLevel, nivel(Config{Env: "production", Level: "error"}))
	assert.Equal(t, zerolog.InfoLevel, nivel(Config{Level: "inexistente"}))
}
