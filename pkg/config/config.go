package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Storage StorageConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // vacío = según Env (development debug, resto info)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig rutas de los archivos de datos.
// El ledger CSV y el índice JSON viven bajo DataDir; las imágenes en su propio
// directorio. Los directorios de usuarios y proveedores son archivos externos
// de solo lectura mantenidos fuera de la aplicación.
type StorageConfig struct {
	DataDir         string // directorio para facturas.csv e imagenes.json
	ImagenesDir     string // directorio de archivos adjuntos crudos
	UsuariosFile    string // usuarios.json (externo, solo lectura)
	ProveedoresFile string // lista de proveedores (externo, solo lectura)
}

// FacturasFile ruta del ledger CSV.
func (c StorageConfig) FacturasFile() string {
	return filepath.Join(c.DataDir, "facturas.csv")
}

// IndiceFile ruta del índice JSON de imágenes.
func (c StorageConfig) IndiceFile() string {
	return filepath.Join(c.DataDir, "imagenes.json")
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, DATA_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "facturas-api"),
			LogLevel: getString(v, "LOG_LEVEL", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "facturas-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			DataDir:         getString(v, "DATA_DIR", "./data"),
			ImagenesDir:     getString(v, "IMAGENES_DIR", "./imagenes"),
			UsuariosFile:    getString(v, "USUARIOS_FILE", "./usuarios.json"),
			ProveedoresFile: getString(v, "PROVEEDORES_FILE", "./proveedores.txt"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
