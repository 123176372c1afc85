package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "OPENAI_API_KEY", "OPENAI_MODEL", "AI_TIMEOUT_SECONDS", "LOCAL_TIMEZONE",
		"LOCALE", "STORE_BACKEND", "DATABASE_URL", "SQLITE_PATH", "TWILIO_ACCOUNT_SID",
		"TWILIO_AUTH_TOKEN", "TWILIO_WHATSAPP_NUMBER", "NOTIFY_WHATSAPP_TO", "DUE_SWEEP_SCHEDULE",
		"DUE_CATCHUP",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, 15*time.Second, cfg.AITimeout)
	assert.Equal(t, "it", cfg.Locale.Name)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, "reminders.db", cfg.SQLitePath)
	assert.Equal(t, "@every 1m", cfg.SweepSchedule)
	assert.Equal(t, time.Local, cfg.LocalTimezone)
	assert.Zero(t, cfg.SweepCatchUp)
}

func TestLoadSweepCatchUp(t *testing.T) {
	clearEnv(t)
	t.Setenv("DUE_CATCHUP", "6h")
	assert.Equal(t, 6*time.Hour, Load().SweepCatchUp)

	t.Setenv("DUE_CATCHUP", "-1h")
	assert.Zero(t, Load().SweepCatchUp)

	t.Setenv("DUE_CATCHUP", "soon")
	assert.Zero(t, Load().SweepCatchUp)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOCALE", "EN")
	t.Setenv("LOCAL_TIMEZONE", "UTC")
	t.Setenv("AI_TIMEOUT_SECONDS", "3")
	t.Setenv("STORE_BACKEND", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "en", cfg.Locale.Name)
	assert.Equal(t, "UTC", cfg.LocalTimezone.String())
	assert.Equal(t, 3*time.Second, cfg.AITimeout)
	assert.Equal(t, BackendSQLite, cfg.StoreBackend)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
}

func TestLoadDatabaseURLImpliesPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/reminders")

	assert.Equal(t, BackendPostgres, Load().StoreBackend)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOCALE", "klingon")
	t.Setenv("LOCAL_TIMEZONE", "Mars/Olympus")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("AI_TIMEOUT_SECONDS", "-4")

	cfg := Load()
	assert.Equal(t, "it", cfg.Locale.Name)
	assert.Equal(t, time.Local, cfg.LocalTimezone)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, 15*time.Second, cfg.AITimeout)
}

func TestLoadPostgresWithoutURLFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "postgres")

	assert.Equal(t, BackendMemory, Load().StoreBackend)
}

func TestParseIntEnv(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	assert.Equal(t, 42, ParseIntEnv("SOME_INT", 1))
	t.Setenv("SOME_INT", "forty")
	assert.Equal(t, 1, ParseIntEnv("SOME_INT", 1))
	t.Setenv("SOME_INT", "")
	assert.Equal(t, 7, ParseIntEnv("SOME_INT", 7))
}
