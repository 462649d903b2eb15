// Package config loads provider credentials and runtime settings from the
// environment. A .env file is honored when present so the workshop can run
// without exporting anything by hand.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries every setting the toolkit reads from the environment. Empty
// provider credentials are not an error: the matching provider client runs in
// sample-data mode instead.
type Config struct {
	// AnthropicAPIKey drives both the example conversation loop and the
	// hosted document summarizer.
	AnthropicAPIKey string

	// AviationstackKey authenticates flight search requests.
	AviationstackKey string

	// RapidAPIKey authenticates the hotel search API.
	RapidAPIKey string

	// YelpAPIKey is the bearer token for restaurant discovery.
	YelpAPIKey string

	// GoogleCalendarToken is an OAuth access token issued by the hosting
	// platform; the toolkit does not implement the OAuth flow itself.
	GoogleCalendarToken string
	// GoogleCalendarID selects the target calendar, "primary" by default.
	GoogleCalendarID string

	// Jira basic-auth credentials.
	JiraBaseURL  string
	JiraEmail    string
	JiraAPIToken string

	// StoreDSN selects reservation persistence: empty keeps everything in
	// memory, any other value is a SQLite database path.
	StoreDSN string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads the configuration from the environment, after loading a .env
// file if one exists.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		AnthropicAPIKey:     os.Getenv("ANTHROPIC_API_KEY"),
		AviationstackKey:    os.Getenv("AVIATIONSTACK_API_KEY"),
		RapidAPIKey:         os.Getenv("RAPIDAPI_KEY"),
		YelpAPIKey:          os.Getenv("YELP_API_KEY"),
		GoogleCalendarToken: os.Getenv("GOOGLE_CALENDAR_TOKEN"),
		GoogleCalendarID:    os.Getenv("GOOGLE_CALENDAR_ID"),
		JiraBaseURL:         os.Getenv("JIRA_BASE_URL"),
		JiraEmail:           os.Getenv("JIRA_EMAIL"),
		JiraAPIToken:        os.Getenv("JIRA_API_TOKEN"),
		StoreDSN:            os.Getenv("STORE_DSN"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
	}
	if cfg.GoogleCalendarID == "" {
		cfg.GoogleCalendarID = "primary"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg
}
