package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config contiene todas las configuraciones de la aplicación
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base de la API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type AuthConfig struct {
	SessionTTLMinutes  int // vencimiento por inactividad
	LoginRatePerMinute int // intentos de login por IP por minuto
	CookieName         string
	CookieSecure       bool
	AdminEmail         string // cuenta admin sembrada al arranque
	AdminPassword      string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Load carga las configuraciones del archivo .env y del entorno
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// El .env es opcional: en despliegue todo llega por entorno
	_ = viper.ReadInConfig()

	setDefaults()

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:    viper.GetString("PORT"),
			Host:    viper.GetString("HOST"),
			BaseURL: viper.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetInt("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			DBName:      viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			MaxConns:    viper.GetInt("DB_MAX_CONNS"),
			MinConns:    viper.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: viper.GetInt("DB_MAX_IDLE_TIME"),
		},
		Auth: AuthConfig{
			SessionTTLMinutes:  viper.GetInt("SESSION_TTL_MINUTES"),
			LoginRatePerMinute: viper.GetInt("LOGIN_RATE_PER_MINUTE"),
			CookieName:         viper.GetString("SESSION_COOKIE_NAME"),
			CookieSecure:       viper.GetBool("SESSION_COOKIE_SECURE"),
			AdminEmail:         viper.GetString("ADMIN_EMAIL"),
			AdminPassword:      viper.GetString("ADMIN_PASSWORD"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("ENV", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "sisvot")
	viper.SetDefault("DB_NAME", "sisvot")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 25)
	viper.SetDefault("DB_MIN_CONNS", 5)
	viper.SetDefault("DB_MAX_IDLE_TIME", 300)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("LOGIN_RATE_PER_MINUTE", 10)
	viper.SetDefault("SESSION_COOKIE_NAME", "sisvot_sesion")
	viper.SetDefault("SESSION_COOKIE_SECURE", false)
	viper.SetDefault("ADMIN_EMAIL", "admin@sisvot.local")
	viper.SetDefault("ADMIN_PASSWORD", "cambiar.123")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
}

// DSN retorna la connection string de PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
