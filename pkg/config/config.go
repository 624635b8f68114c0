package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	Session SessionConfig
	HTTP    HTTPConfig
	Barcode BarcodeConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Version  string
	LogLevel string
}

// IsProduction indica si la app corre en producción (cookies Secure, logs JSON).
func (c AppConfig) IsProduction() bool { return c.Env == "production" }

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL    string
	Server         string
	Port           int
	User           string
	Password       string
	Name           string
	SSLMode        string
	ConnectTimeout time.Duration
	MaxOpenConns   int
	MaxIdleConns   int
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Server, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// SessionConfig configuración de la cookie de sesión firmada.
type SessionConfig struct {
	SecretKey  string
	Lifetime   time.Duration
	CookieName string
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

// BarcodeConfig configuración del servicio externo de códigos de barras.
type BarcodeConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env / config.env).
// Las env vars tienen prioridad. Nombres esperados: SECRET_KEY, DB_SERVER, DB_NAME, APP_ENV, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "SGI-GuateMart"),
			Version:  getString(v, "APP_VERSION", "1.0.0"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL:    getString(v, "DATABASE_URL", ""),
			Server:         getString(v, "DB_SERVER", "localhost"),
			Port:           getInt(v, "DB_PORT", 5432),
			User:           getString(v, "DB_USER", "postgres"),
			Password:       getString(v, "DB_PASSWORD", ""),
			Name:           getString(v, "DB_NAME", "sgi_guatemart"),
			SSLMode:        getString(v, "DB_SSLMODE", "disable"),
			ConnectTimeout: time.Duration(getInt(v, "DB_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second,
			MaxOpenConns:   getInt(v, "DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:   getInt(v, "DB_MAX_IDLE_CONNS", 5),
		},
		Session: SessionConfig{
			SecretKey:  getString(v, "SECRET_KEY", ""),
			Lifetime:   time.Duration(getInt(v, "SESSION_LIFETIME_MINUTES", 60)) * time.Minute,
			CookieName: getString(v, "SESSION_COOKIE_NAME", "sgi_session"),
			Issuer:     getString(v, "SESSION_ISSUER", "sgi-guatemart"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 5000),
		},
		Barcode: BarcodeConfig{
			BaseURL: getString(v, "BARCODE_API_URL", "https://world.openfoodfacts.org"),
			Timeout: time.Duration(getInt(v, "BARCODE_TIMEOUT_SECONDS", 5)) * time.Second,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rechaza configuraciones con las que la app no puede arrancar de forma segura.
func (c *Config) Validate() error {
	if c.Session.SecretKey == "" {
		if c.App.IsProduction() {
			return errors.New("SECRET_KEY es obligatorio en producción")
		}
		c.Session.SecretKey = "dev-secret-key-change-in-production"
	}
	if c.DB.ConnectTimeout <= 0 {
		c.DB.ConnectTimeout = 10 * time.Second
	}
	if c.Barcode.Timeout <= 0 {
		c.Barcode.Timeout = 5 * time.Second
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}
