package config

import (
	"os"
	"strconv"
	"strings"
)

// OCRConfig holds settings for the text-recognition engine and the upload route.
type OCRConfig struct {
	Engine         string
	TesseractCmd   string
	Languages      []string
	PSM            int
	TimeoutSec     int
	MaxUploadBytes int
	MaxPixels      int
	ResponseFormat string
}

// DatabaseConfig holds PostgreSQL database connection settings.
// History is disabled when Host is empty.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a database host was configured.
func (c DatabaseConfig) Enabled() bool { return c.Host != "" }

// MinIOConfig holds object storage settings for the upload archive.
// Archiving is disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether an object storage endpoint was configured.
func (c MinIOConfig) Enabled() bool { return c.Endpoint != "" }

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port        string
	Timezone    string
	// SwaggerHost overrides the host in the OpenAPI document; empty means
	// the UI uses the origin it was loaded from.
	SwaggerHost string
	OCR         OCRConfig
	Database    DatabaseConfig
	MinIO       MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() *AppConfig {
	return &AppConfig{
		Port:        getEnv("PORT", "8080"),
		Timezone:    getEnv("APP_TIMEZONE", "UTC"),
		SwaggerHost: getEnv("SWAGGER_HOST", ""),
		OCR: OCRConfig{
			Engine:         strings.ToLower(getEnv("OCR_ENGINE", "tesseract")),
			TesseractCmd:   getEnv("TESSERACT_CMD", ""),
			Languages:      getEnvList("OCR_LANGUAGES"),
			PSM:            getEnvInt("OCR_PSM", 0),
			TimeoutSec:     getEnvInt("OCR_TIMEOUT_SEC", 30),
			MaxUploadBytes: getEnvInt("OCR_MAX_UPLOAD_BYTES", 10<<20),
			MaxPixels:      getEnvInt("OCR_MAX_PIXELS", 89478485),
			ResponseFormat: strings.ToLower(getEnv("OCR_RESPONSE_FORMAT", "json")),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvList splits a comma or plus separated value ("eng,deu" or "eng+deu").
func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == '+' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
