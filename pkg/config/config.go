package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo; un flag --config permite apuntar a otro
// archivo de entorno).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Catalog CatalogConfig
	Log     LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// CatalogConfig ubicación del documento de catálogo y de los archivos
// estáticos del sitio.
type CatalogConfig struct {
	Path      string // ruta al JSON {"items": [...]}
	StaticDir string // directorio servido en la raíz
}

// LogConfig nivel del logger estructurado.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// Load lee la configuración desde variables de entorno y opcionalmente desde
// archivo. Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, CATALOG_PATH, STATIC_DIR, LOG_LEVEL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Flag de línea de comandos para elegir el archivo de configuración
	// (FlagSet propio para no chocar con los flags de go test).
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	configFile := cmdLine.String("config", "", "archivo de configuración .env")
	_ = cmdLine.Parse(os.Args[1:])

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("leer archivo de configuración: %w", err)
		}
	} else {
		// Opcional: .env en el directorio de trabajo
		v.SetConfigName(".env")
		v.SetConfigType("env")
		v.AddConfigPath(".")
		_ = v.ReadInConfig() // ignoramos error si no existe
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "credicalidda-catalog"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Catalog: CatalogConfig{
			Path:      getString(v, "CATALOG_PATH", "data/catalogo.json"),
			StaticDir: getString(v, "STATIC_DIR", "."),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
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
