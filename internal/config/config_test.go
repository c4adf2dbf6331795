package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("OCR_LANGUAGES", "eng+deu")
	t.Setenv("OCR_RESPONSE_FORMAT", "TEXT")
	t.Setenv("TESSERACT_CMD", "/opt/tess/bin/tesseract")
	t.Setenv("OCR_MAX_PIXELS", "1000000")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.False(t, cfg.MinIO.Enabled())
	assert.Equal(t, []string{"eng", "deu"}, cfg.OCR.Languages)
	assert.Equal(t, "text", cfg.OCR.ResponseFormat)
	assert.Equal(t, "/opt/tess/bin/tesseract", cfg.OCR.TesseractCmd)
	assert.Equal(t, 1000000, cfg.OCR.MaxPixels)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "OCR_ENGINE", "OCR_TIMEOUT_SEC", "OCR_MAX_UPLOAD_BYTES", "OCR_MAX_PIXELS", "OCR_RESPONSE_FORMAT", "OCR_LANGUAGES", "DB_HOST"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "tesseract", cfg.OCR.Engine)
	assert.Equal(t, 30, cfg.OCR.TimeoutSec)
	assert.Equal(t, 10<<20, cfg.OCR.MaxUploadBytes)
	assert.Equal(t, 89478485, cfg.OCR.MaxPixels)
	assert.Equal(t, "json", cfg.OCR.ResponseFormat)
	assert.Nil(t, cfg.OCR.Languages)
	assert.False(t, cfg.Database.Enabled())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvList(t *testing.T) {
	key := "TEST_LIST_VAR"

	t.Setenv(key, " eng , fra,,spa ")
	assert.Equal(t, []string{"eng", "fra", "spa"}, getEnvList(key))

	t.Setenv(key, "")
	assert.Nil(t, getEnvList(key))
}
