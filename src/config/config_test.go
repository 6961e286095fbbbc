package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func Test_FromEnv_SQLiteDefaults(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{"DB_DRIVER": "sqlite"}))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerHost)
	assert.Equal(t, "biblioteca.db", cfg.DBDSN)
	assert.Equal(t, "gestor@biblioteca.com", cfg.ManagerEmail)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, 12*time.Hour, cfg.JWTTTL)
	assert.True(t, cfg.NationalIDChecksum)
	assert.Equal(t, 40, cfg.ReportRowsPerPage)
	assert.Equal(t, time.UTC, cfg.Location)
}

func Test_FromEnv_PostgresRequiresDSNAndSecret(t *testing.T) {
	_, err := FromEnv(envOf(map[string]string{}))
	assert.ErrorContains(t, err, "DB_DSN")

	_, err = FromEnv(envOf(map[string]string{"DB_DSN": "postgres://localhost/biblioteca"}))
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func Test_FromEnv_ParsesOverrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"DB_DSN":               "postgres://localhost/biblioteca",
		"JWT_SECRET":           "s3cret",
		"JWT_TTL":              "30m",
		"ALLOWED_ORIGINS":      "http://a.example, http://b.example ,",
		"MANAGER_EMAIL":        "Chefe@Biblioteca.com",
		"READER_CPF_CHECKSUM":  "false",
		"REPORT_ROWS_PER_PAGE": "25",
		"LOGIN_RATE":           "0.5",
		"LOGIN_BURST":          "3",
	}))

	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "chefe@biblioteca.com", cfg.ManagerEmail)
	assert.False(t, cfg.NationalIDChecksum)
	assert.Equal(t, 25, cfg.ReportRowsPerPage)
	assert.InDelta(t, 0.5, cfg.LoginRate, 0.0001)
	assert.Equal(t, 3, cfg.LoginBurst)
}

func Test_FromEnv_RejectsBadValues(t *testing.T) {
	base := map[string]string{"DB_DRIVER": "sqlite"}

	for key, value := range map[string]string{
		"DB_MAX_OPEN_CONNS":    "many",
		"READER_CPF_CHECKSUM":  "maybe",
		"JWT_TTL":              "forever",
		"REPORT_ROWS_PER_PAGE": "0",
		"TIMEZONE":             "Mars/Olympus",
	} {
		values := map[string]string{key: value}
		for k, v := range base {
			values[k] = v
		}
		_, err := FromEnv(envOf(values))
		assert.Error(t, err, key)
	}

	_, err := FromEnv(envOf(map[string]string{"DB_DRIVER": "mysql"}))
	assert.ErrorContains(t, err, "unsupported")
}
