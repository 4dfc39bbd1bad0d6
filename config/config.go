package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

type Config struct {
	Server     ServerConfig
	Google     GoogleConfig
	Cloudinary CloudinaryConfig
	Paystack   PaystackConfig
	Admin      AdminConfig
	Storage    StorageConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	BaseURL      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type GoogleConfig struct {
	ServiceAccountEmail string
	PrivateKey          string
	SheetID             string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type PaystackConfig struct {
	SecretKey string
	PublicKey string
	// ListingFeeKobo is the marketplace listing fee in kobo. Zero
	// disables the payment gate on the sell flow.
	ListingFeeKobo int64
}

type AdminConfig struct {
	Password string
}

type StorageConfig struct {
	// Driver selects the backend: "sheets" or "mysql".
	Driver   string
	MySQLDSN string
}

const (
	DriverSheets = "sheets"
	DriverMySQL  = "mysql"
)

// Load reads configuration from the process environment. It never caches:
// the environment is static per process.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         envOr("PORT", "8080"),
			Env:          envOr("APP_ENV", "development"),
			BaseURL:      envOr("PUBLIC_BASE_URL", "http://localhost:8080"),
			ReadTimeout:  envDuration("READ_TIMEOUT", 15*time.Second),
			WriteTimeout: envDuration("WRITE_TIMEOUT", 30*time.Second),
		},
		Google: GoogleConfig{
			ServiceAccountEmail: os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL"),
			PrivateKey:          os.Getenv("GOOGLE_PRIVATE_KEY"),
			SheetID:             os.Getenv("GOOGLE_SHEET_ID"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		Paystack: PaystackConfig{
			SecretKey:      os.Getenv("PAYSTACK_SECRET_KEY"),
			PublicKey:      os.Getenv("PAYSTACK_PUBLIC_KEY"),
			ListingFeeKobo: envInt64("MARKETPLACE_LISTING_FEE_KOBO", 50000),
		},
		Admin: AdminConfig{
			Password: envOr("ADMIN_PASSWORD", "Pleasure2025"),
		},
		Storage: StorageConfig{
			Driver:   envOr("STORAGE_DRIVER", DriverSheets),
			MySQLDSN: os.Getenv("MYSQL_DSN"),
		},
	}
}

// Validate reports whether every required value is present, with one
// human-readable message per missing field.
func (c *Config) Validate() (bool, []string) {
	var errs []string
	required := []struct {
		value string
		name  string
	}{
		{c.Google.ServiceAccountEmail, "GOOGLE_SERVICE_ACCOUNT_EMAIL"},
		{c.Google.PrivateKey, "GOOGLE_PRIVATE_KEY"},
		{c.Google.SheetID, "GOOGLE_SHEET_ID"},
		{c.Cloudinary.CloudName, "CLOUDINARY_CLOUD_NAME"},
		{c.Cloudinary.APIKey, "CLOUDINARY_API_KEY"},
		{c.Cloudinary.APISecret, "CLOUDINARY_API_SECRET"},
		{c.Paystack.SecretKey, "PAYSTACK_SECRET_KEY"},
		{c.Paystack.PublicKey, "PAYSTACK_PUBLIC_KEY"},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, r.name+" is required")
		}
	}
	if c.Storage.Driver == DriverMySQL && c.Storage.MySQLDSN == "" {
		errs = append(errs, "MYSQL_DSN is required when STORAGE_DRIVER=mysql")
	}
	return len(errs) == 0, errs
}

// FormattedPrivateKey returns the PEM key with escaped newline sequences
// converted to real newlines and surrounding quotes stripped. Deployment
// platforms store the key with literal backslash-n escapes.
func (g GoogleConfig) FormattedPrivateKey() (string, error) {
	if g.PrivateKey == "" {
		return "", &store.ConfigError{Field: "GOOGLE_PRIVATE_KEY"}
	}
	key := strings.ReplaceAll(g.PrivateKey, `\\n`, "\n")
	key = strings.ReplaceAll(key, `\n`, "\n")
	key = strings.ReplaceAll(key, `"`, "")
	return strings.TrimSpace(key), nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
