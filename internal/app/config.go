package app

import (
	"context"
	"os"
	"strings"
	"time"

	"bgg_sheet_sync/internal/browser"
	"bgg_sheet_sync/internal/notifications"
	"bgg_sheet_sync/internal/sheets"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	// Configure logging
	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		// Default based on environment
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// GetRequiredEnv fetches a required environment variable or exits if not set.
func GetRequiredEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Msgf("%s environment variable is required", key)
	}
	return value
}

// GetEnvWithDefault fetches an environment variable with a default fallback.
func GetEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Config carries the run's wiring read from the environment.
type Config struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsFile string
	BaseURL         string
	BrowserOptions  *browser.Options
}

// LoadConfig reads the run configuration from the environment. Only the
// spreadsheet id is mandatory.
func LoadConfig() Config {
	opts := browser.DefaultOptions()
	opts.Headless = GetEnvWithDefault("HEADLESS", "true") != "false"
	if raw := os.Getenv("NAV_TIMEOUT_SECONDS"); raw != "" {
		if d, err := time.ParseDuration(raw + "s"); err == nil && d > 0 {
			opts.Timeout = d
		} else {
			log.Warn().Str("value", raw).Msg("Ignoring invalid NAV_TIMEOUT_SECONDS")
		}
	}

	return Config{
		SpreadsheetID:   GetRequiredEnv("SPREADSHEET_ID"),
		SheetName:       GetEnvWithDefault("SHEET_NAME", "Games"),
		CredentialsFile: GetEnvWithDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		BaseURL:         GetEnvWithDefault("BGG_BASE_URL", "https://boardgamegeek.com"),
		BrowserOptions:  opts,
	}
}

// InitializeStore creates the sheets client and binds it to the configured
// spreadsheet.
func InitializeStore(ctx context.Context, cfg Config) *sheets.Store {
	log.Debug().Msg("Initializing sheets client")
	client, err := sheets.NewClient(ctx, cfg.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheets client")
	}
	return sheets.NewStore(client, cfg.SpreadsheetID, cfg.SheetName)
}

// InitializeNotificationClient creates and returns the notification client.
func InitializeNotificationClient() *notifications.Client {
	enabled := GetEnvWithDefault("NTFY_ENABLED", "false") == "true"
	baseURL := GetEnvWithDefault("NTFY_URL", "https://ntfy.sh")
	topic := GetEnvWithDefault("NTFY_TOPIC", "bgg-sheet-sync")

	log.Debug().
		Bool("enabled", enabled).
		Str("base_url", baseURL).
		Str("topic", topic).
		Msg("Initializing notification client")

	client := notifications.NewClient(baseURL, topic, enabled)

	if enabled {
		log.Info().Str("topic", topic).Msg("Notifications enabled")
	} else {
		log.Debug().Msg("Notifications disabled")
	}

	return client
}
