package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every runtime parameter of the application.
type Config struct {
	SecretKey   string
	DatabaseURL string
	ServerPort  int

	CurrentEdition int
	BasePrize      int
	Commission     int
	EntryFee       int

	AdminIDs    []int64
	BotUsername string

	AllowedOrigins []string
	Debug          bool

	// Optional object storage for avatar mirroring. Mirroring is disabled
	// when the block is incomplete.
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads configuration from environment variables, optionally seeded
// from a .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("SECRET_KEY environment variable is not set")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	edition, err := intEnv("CURRENT_EDITION", 1)
	if err != nil {
		return nil, err
	}
	if edition <= 0 {
		return nil, fmt.Errorf("CURRENT_EDITION must be positive, got %d", edition)
	}

	basePrize, err := intEnv("BASE_PRIZE", 0)
	if err != nil {
		return nil, err
	}
	commission, err := intEnv("COMMISSION", 0)
	if err != nil {
		return nil, err
	}
	entryFee, err := intEnv("ENTRY_FEE", 0)
	if err != nil {
		return nil, err
	}

	adminIDs, err := ParseAdminIDs(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return nil, err
	}

	origins := strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",")
	allowed := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			allowed = append(allowed, o)
		}
	}
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}

	cfg := &Config{
		SecretKey:         secret,
		DatabaseURL:       dbURL,
		ServerPort:        port,
		CurrentEdition:    edition,
		BasePrize:         basePrize,
		Commission:        commission,
		EntryFee:          entryFee,
		AdminIDs:          adminIDs,
		BotUsername:       os.Getenv("BOT_USERNAME"),
		AllowedOrigins:    allowed,
		Debug:             os.Getenv("DEBUG") == "true" || os.Getenv("DEBUG") == "1",
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}

// ParseAdminIDs parses the comma-separated ADMIN_IDS value into typed
// telegram ids.
func ParseAdminIDs(raw string) ([]int64, error) {
	ids := make([]int64, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_IDS entry %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// IsAdmin reports whether the telegram id is in the admin allow-list.
func (c *Config) IsAdmin(telegramUserID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramUserID {
			return true
		}
	}
	return false
}

// AvatarStorageConfigured reports whether the R2 block is complete enough
// to enable avatar mirroring.
func (c *Config) AvatarStorageConfigured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" &&
		c.R2SecretAccessKey != "" && c.R2BucketName != "" && c.R2PublicBaseURL != ""
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}
