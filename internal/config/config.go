package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/pathakanu/myAssistant/internal/locale"
)

// Store backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	Port string

	OpenAIAPIKey string
	OpenAIModel  string
	AITimeout    time.Duration

	LocalTimezone *time.Location
	Locale        locale.Locale

	StoreBackend string
	DatabaseURL  string
	SQLitePath   string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string
	NotifyWhatsAppTo     string
	SweepSchedule        string
	// SweepCatchUp widens the first sweep window backwards so reminders that
	// fell due while the process was down are still delivered.
	SweepCatchUp time.Duration
}

// Load reads configuration values and prepares defaults where applicable.
// Invalid values are logged and replaced by their defaults.
func Load() *Config {
	_ = godotenv.Load()

	timezoneName := getenvDefault("LOCAL_TIMEZONE", "Local")
	location, err := time.LoadLocation(timezoneName)
	if err != nil {
		log.Printf("config: invalid LOCAL_TIMEZONE %q, defaulting to system local: %v", timezoneName, err)
		location = time.Local
	}

	localeName := getenvDefault("LOCALE", "it")
	loc, ok := locale.Lookup(localeName)
	if !ok {
		log.Printf("config: unknown LOCALE %q, defaulting to it", localeName)
		loc = locale.Italian
	}

	databaseURL := os.Getenv("DATABASE_URL")
	backend := strings.ToLower(getenvDefault("STORE_BACKEND", BackendMemory))
	if databaseURL != "" {
		backend = BackendPostgres
	}
	switch backend {
	case BackendMemory, BackendSQLite, BackendPostgres:
	default:
		log.Printf("config: unknown STORE_BACKEND %q, defaulting to %s", backend, BackendMemory)
		backend = BackendMemory
	}
	if backend == BackendPostgres && databaseURL == "" {
		log.Printf("config: STORE_BACKEND=postgres without DATABASE_URL, defaulting to %s", BackendMemory)
		backend = BackendMemory
	}

	aiTimeout := ParseIntEnv("AI_TIMEOUT_SECONDS", 15)
	if aiTimeout <= 0 {
		log.Printf("config: AI_TIMEOUT_SECONDS must be positive, defaulting to 15")
		aiTimeout = 15
	}

	catchUp := time.Duration(0)
	if raw := os.Getenv("DUE_CATCHUP"); raw != "" {
		catchUp, err = time.ParseDuration(raw)
		if err != nil || catchUp < 0 {
			log.Printf("config: invalid DUE_CATCHUP %q, defaulting to 0", raw)
			catchUp = 0
		}
	}

	return &Config{
		Port:                 getenvDefault("PORT", "8080"),
		OpenAIAPIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:          getenvDefault("OPENAI_MODEL", "gpt-4o-mini"),
		AITimeout:            time.Duration(aiTimeout) * time.Second,
		LocalTimezone:        location,
		Locale:               loc,
		StoreBackend:         backend,
		DatabaseURL:          databaseURL,
		SQLitePath:           getenvDefault("SQLITE_PATH", "reminders.db"),
		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		NotifyWhatsAppTo:     os.Getenv("NOTIFY_WHATSAPP_TO"),
		SweepSchedule:        getenvDefault("DUE_SWEEP_SCHEDULE", "@every 1m"),
		SweepCatchUp:         catchUp,
	}
}

func getenvDefault(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}

// ParseIntEnv returns the integer value for an environment variable or the provided default.
func ParseIntEnv(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("config: unable to parse %s=%q as int: %v", key, value, err)
		return def
	}
	return parsed
}
