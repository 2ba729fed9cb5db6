package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gameday/internal/log"
)

// Store drivers for the remote game day store
const (
	StoreDriverRedis     = "redis"
	StoreDriverFirestore = "firestore"
)

// Config holds every setting the bot binary needs
type Config struct {
	// Development switches the logger to the human readable encoder
	Development bool

	// Location is the time zone game days are keyed in
	Location *time.Location

	// StoreDriver selects the remote store: redis or firestore
	StoreDriver string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// FirebaseProjectID is optional when the credentials carry a project
	FirebaseProjectID string

	// FirebaseCredentialsFile is a service account key file
	FirebaseCredentialsFile string

	// FirebaseCredentialsJSON is a base64 encoded service account key, preferred over the file
	FirebaseCredentialsJSON string

	// LocalCachePath is the SQLite file backing the local fallback cache; empty disables it
	LocalCachePath string

	// Tracking window in fractional hours of the local day
	WindowStartHour float64
	WindowEndHour   float64

	// Supporter board posting limit per author
	SupporterPostInterval time.Duration
	SupporterPostBurst    int

	DiscordToken  string
	ApplicationID string
	GuildID       string

	// AdminUserIDs are the Discord users allowed to run destructive resets
	AdminUserIDs []string

	// HTTPAddr is the API listen address; empty disables the API
	HTTPAddr string

	// AdminPasswordHash is a bcrypt hash checked by the API admin login
	AdminPasswordHash string

	// AdminTokenSecret signs admin bearer tokens
	AdminTokenSecret string

	AdminTokenTTL  time.Duration
	AllowedOrigins []string
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found", zap.Error(err))
	}

	cfg := &Config{
		Development:             envOrDefault("APP_ENV", "production") == "development",
		StoreDriver:             envOrDefault("STORE_DRIVER", StoreDriverRedis),
		RedisAddr:               envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:           envOrDefault("REDIS_PASSWORD", ""),
		RedisDB:                 intEnvOrDefault("REDIS_DB", 0),
		FirebaseProjectID:       envOrDefault("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsFile: envOrDefault("FIREBASE_CREDENTIALS_FILE", "./serviceAccountKey.json"),
		FirebaseCredentialsJSON: envOrDefault("FIREBASE_CREDENTIALS_JSON", ""),
		LocalCachePath:          envOrDefault("LOCAL_CACHE_PATH", "./data/gameday.db"),
		WindowStartHour:         floatEnvOrDefault("WINDOW_START_HOUR", 8),
		WindowEndHour:           floatEnvOrDefault("WINDOW_END_HOUR", 23),
		SupporterPostInterval:   durationEnvOrDefault("SUPPORTER_POST_INTERVAL", 10*time.Second),
		SupporterPostBurst:      intEnvOrDefault("SUPPORTER_POST_BURST", 3),
		DiscordToken:            envOrDefault("DISCORD_TOKEN", ""),
		ApplicationID:           envOrDefault("APPLICATION_ID", ""),
		GuildID:                 envOrDefault("GUILD_ID", ""),
		AdminUserIDs:            listEnv("ADMIN_USER_IDS"),
		HTTPAddr:                envOrDefault("HTTP_ADDR", ":8080"),
		AdminPasswordHash:       envOrDefault("ADMIN_PASSWORD_HASH", ""),
		AdminTokenSecret:        envOrDefault("ADMIN_TOKEN_SECRET", ""),
		AdminTokenTTL:           durationEnvOrDefault("ADMIN_TOKEN_TTL", 12*time.Hour),
		AllowedOrigins:          listEnv("ALLOWED_ORIGINS"),
	}
	if boolEnvOrDefault("LOCAL_CACHE_DISABLED", false) {
		cfg.LocalCachePath = ""
	}
	if boolEnvOrDefault("HTTP_DISABLED", false) {
		cfg.HTTPAddr = ""
	}

	loc, err := time.LoadLocation(envOrDefault("TIME_ZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone: %w", err)
	}
	cfg.Location = loc

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings that would otherwise fail much later
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverRedis, StoreDriverFirestore:
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}

	if c.WindowStartHour < 0 || c.WindowEndHour > 24 || c.WindowEndHour <= c.WindowStartHour {
		return fmt.Errorf("invalid tracking window %.2f-%.2f", c.WindowStartHour, c.WindowEndHour)
	}

	if c.DiscordToken == "" && c.HTTPAddr == "" {
		return errors.New("nothing to serve: set DISCORD_TOKEN or HTTP_ADDR")
	}

	if c.AdminPasswordHash != "" && c.AdminTokenSecret == "" {
		return errors.New("ADMIN_TOKEN_SECRET is required when ADMIN_PASSWORD_HASH is set")
	}

	return nil
}

// IsAdmin reports whether a Discord user may run destructive commands
func (c *Config) IsAdmin(userID string) bool {
	for _, id := range c.AdminUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
