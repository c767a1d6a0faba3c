package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a file).
type Config struct {
	App    AppConfig
	DB     DBConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	BOM    BOMConfig
	Farmer FarmerConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// BOMConfig enumerates the variant classification constants. The pump head
// classes drive variant tagging of BOM items; orders whose head cannot be
// resolved carry the unknown label and are reported but never fulfilled
// against a concrete variant.
type BOMConfig struct {
	PumpHeadClasses  []string // e.g. 30M, 50M, 70M, 100M
	UnknownHeadLabel string   // demand rows with unresolvable head
	ComponentLabel   string   // variant key assigned to pulled-in sub-items
}

// FarmerConfig settings for the farmer-detail enrichment service. The
// lookup is best effort: on timeout or failure reports degrade to a nil
// farmer block instead of erroring.
type FarmerConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DBConfig PostgreSQL settings. When DatabaseURL is set it is used as the
// full connection string.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns the DSN to use: DatabaseURL when set, otherwise
// one built from the individual fields.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN returns the PostgreSQL connection string with URL encoding for
// special characters in the password.
func (c DBConfig) DSN() string {
	userInfo := url.UserPassword(c.User, c.Password)

	u := &url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}

	return u.String()
}

// JWTConfig bearer-token validation settings. Tokens are issued by the
// surrounding service; this core only verifies them.
type JWTConfig struct {
	Secret string
	Issuer string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from environment variables (and optionally a
// file). Env vars take priority. Expected names: APP_ENV, DB_HOST,
// PUMP_HEAD_CLASSES, FARMER_SERVICE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore error when absent

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "solar-install-inventory"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "solar_inventory"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "solar-install-inventory"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		BOM: BOMConfig{
			PumpHeadClasses:  getStringSlice(v, "PUMP_HEAD_CLASSES", []string{"30M", "50M", "70M", "100M"}),
			UnknownHeadLabel: getString(v, "UNKNOWN_HEAD_LABEL", "UNKNOWN"),
			ComponentLabel:   getString(v, "COMPONENT_LABEL", "component"),
		},
		Farmer: FarmerConfig{
			BaseURL: getString(v, "FARMER_SERVICE_URL", ""),
			Timeout: getDuration(v, "FARMER_SERVICE_TIMEOUT", 5*time.Second),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getStringSlice(v *viper.Viper, key string, def []string) []string {
	if v.IsSet(key) {
		raw := v.GetString(key)
		if raw != "" {
			parts := strings.Split(raw, ",")
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				if s := strings.TrimSpace(p); s != "" {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return def
}

func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if v.IsSet(key) {
		if d := v.GetDuration(key); d > 0 {
			return d
		}
	}
	return def
}
