package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del terminal (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	API    APIConfig
	Sesion SesionConfig
	Log    LogConfig
}

// AppConfig configuración general del terminal.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuración del backend mi_panaderito.
type APIConfig struct {
	BaseURL string // incluye el prefijo de la API, ej. https://host/mi_panaderito
	Timeout int    // segundos
}

// TimeoutDuration devuelve el timeout del cliente HTTP.
func (c APIConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// SesionConfig dónde se persiste la sesión autenticada (equivalente al
// almacenamiento por origen del navegador: un solo archivo, una sola clave).
type SesionConfig struct {
	Ruta string
}

// LogConfig nivel de log del terminal.
type LogConfig struct {
	Level string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, SESION_RUTA, etc.
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
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "panaderito-pos"),
		},
		API: APIConfig{
			BaseURL: getString(v, "API_BASE_URL", "http://localhost:8080/mi_panaderito"),
			Timeout: getInt(v, "API_TIMEOUT_SECONDS", 15),
		},
		Sesion: SesionConfig{
			Ruta: getString(v, "SESION_RUTA", defaultSesionRuta()),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// defaultSesionRuta ubica la sesión bajo el directorio de configuración del
// usuario; si no se puede resolver cae al directorio actual.
func defaultSesionRuta() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "sesion.json"
	}
	return filepath.Join(dir, "panaderito-pos", "sesion.json")
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
