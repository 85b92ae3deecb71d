package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	Server     ServerConfig
	Backend    BackendConfig
	Redis      RedisConfig
	Admin      AdminConfig
	Entry      EntryConfig
	Migrations MigrationsConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	AllowOrigins []string
	// TrustedProxies lists the IPs or CIDRs whose X-Forwarded-For is
	// believed. Empty means the peer address is the client.
	TrustedProxies []string
}

// BackendConfig describes the managed Postgres backend. URL carries host,
// port, database and options; the keys are the passwords of the two roles.
type BackendConfig struct {
	URL         string
	AnonRole    string
	AnonKey     string
	ServiceRole string
	ServiceKey  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AdminConfig struct {
	Password        string
	PasswordHash    string
	TokenSecret     string
	TokenTTL        time.Duration
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

type EntryConfig struct {
	ResetClearsAudit bool
}

type MigrationsConfig struct {
	Path string
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// New loads the configuration from the environment (and an optional .env
// file). Missing backend or admin secrets are fatal.
func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	serverPort, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	serverCfg := ServerConfig{
		Host: stringEnv("SERVER_HOST", "localhost"),
		Port: serverPort,
		AllowOrigins: listEnv(
			"CORS_ALLOW_ORIGINS",
			[]string{"http://localhost:3000"},
		),
		TrustedProxies: listEnv("TRUSTED_PROXIES", nil),
	}

	for _, p := range serverCfg.TrustedProxies {
		if !validProxy(p) {
			return nil, fmt.Errorf("%s: invalid TRUSTED_PROXIES entry %q", op, p)
		}
	}

	backendCfg := BackendConfig{
		URL:         os.Getenv("BACKEND_URL"),
		AnonRole:    stringEnv("BACKEND_ANON_ROLE", "anon"),
		AnonKey:     os.Getenv("BACKEND_ANON_KEY"),
		ServiceRole: stringEnv("BACKEND_SERVICE_ROLE", "service_role"),
		ServiceKey:  os.Getenv("BACKEND_SERVICE_KEY"),
	}

	if backendCfg.URL == "" {
		return nil, fmt.Errorf("%s: missing BACKEND_URL", op)
	}

	if _, err := backendCfg.DSN(backendCfg.AnonRole, "x"); err != nil {
		return nil, fmt.Errorf("%s: invalid BACKEND_URL: %w", op, err)
	}

	if backendCfg.AnonKey == "" {
		return nil, fmt.Errorf("%s: missing BACKEND_ANON_KEY", op)
	}

	if backendCfg.ServiceKey == "" {
		return nil, fmt.Errorf("%s: missing BACKEND_SERVICE_KEY", op)
	}

	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	redisCfg := RedisConfig{
		Addr:     stringEnv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	}

	adminCfg := AdminConfig{
		Password:     os.Getenv("ADMIN_PASSWORD"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		TokenSecret:  os.Getenv("ADMIN_TOKEN_SECRET"),
	}

	if adminCfg.Password == "" && adminCfg.PasswordHash == "" {
		return nil, fmt.Errorf("%s: missing ADMIN_PASSWORD or ADMIN_PASSWORD_HASH", op)
	}

	if adminCfg.TokenSecret == "" {
		return nil, fmt.Errorf("%s: missing ADMIN_TOKEN_SECRET", op)
	}

	if adminCfg.TokenTTL, err = durationEnv("ADMIN_TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if adminCfg.LoginRateLimit, err = intEnv("LOGIN_RATE_LIMIT", 10); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if adminCfg.LoginRateWindow, err = durationEnv("LOGIN_RATE_WINDOW", time.Minute); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resetClears, err := boolEnv("ENTRY_RESET_CLEARS_AUDIT", false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Config{
		Env:        stringEnv("APP_ENV", "development"),
		Server:     serverCfg,
		Backend:    backendCfg,
		Redis:      redisCfg,
		Admin:      adminCfg,
		Entry:      EntryConfig{ResetClearsAudit: resetClears},
		Migrations: MigrationsConfig{Path: os.Getenv("MIGRATIONS_PATH")},
	}, nil
}

// DSN builds a connection string for role by injecting the credentials into
// the backend URL.
func (b BackendConfig) DSN(role, key string) (string, error) {
	u, err := url.Parse(b.URL)
	if err != nil {
		return "", err
	}

	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	if u.Host == "" {
		return "", fmt.Errorf("missing host")
	}

	u.User = url.UserPassword(role, key)

	return u.String(), nil
}

func (b BackendConfig) AnonDSN() (string, error) {
	return b.DSN(b.AnonRole, b.AnonKey)
}

func (b BackendConfig) ServiceDSN() (string, error) {
	return b.DSN(b.ServiceRole, b.ServiceKey)
}

func stringEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func listEnv(key string, def []string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func validProxy(s string) bool {
	if strings.Contains(s, "/") {
		_, _, err := net.ParseCIDR(s)
		return err == nil
	}
	return net.ParseIP(s) != nil
}

func intEnv(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	if v <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}

	return v, nil
}

func boolEnv(key string, def bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}

	return v, nil
}
