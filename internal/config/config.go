package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Backend  BackendConfig
	History  HistoryConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	AutoMigrate     bool
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessTokenDuration time.Duration
	PrivateKey          *rsa.PrivateKey
	PublicKey           *rsa.PublicKey
	Issuer              string
}

// BackendConfig points at the remote finance backend used when History.Source is "remote"
type BackendConfig struct {
	BaseURL                    string
	Timeout                    time.Duration
	CircuitBreakerMaxFailures  int
	CircuitBreakerResetTimeout time.Duration
	CircuitBreakerHalfOpenSucc int
}

type HistoryConfig struct {
	Source               string
	DefaultRange         string
	SelectionTTL         time.Duration
	SelectionCapacity    int
	SeedSampleData       bool
	SeedTransactionCount int
}

type SecurityConfig struct {
	RateLimitPerSecond int
}

const (
	HistorySourceDatabase = "database"
	HistorySourceRemote   = "remote"

	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)

var validDateRangeTokens = map[string]bool{
	"today": true, "yesterday": true,
	"this_week": true, "last_week": true,
	"this_month": true, "last_month": true,
	"this_year": true, "last_year": true,
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DatabaseDriverPostgres),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finance_user"),
			Password:        getEnv("DB_PASSWORD", "finance_password"),
			Name:            getEnv("DB_NAME", "finance_history"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "finance_history.db"),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		JWT: JWTConfig{
			AccessTokenDuration: getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 24*time.Hour),
			Issuer:              getEnv("JWT_ISSUER", "finance-backend"),
		},
		Backend: BackendConfig{
			BaseURL:                    strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:9000"), "/"),
			Timeout:                    getDurationEnv("BACKEND_TIMEOUT", 10*time.Second),
			CircuitBreakerMaxFailures:  getIntEnv("BACKEND_CB_MAX_FAILURES", 5),
			CircuitBreakerResetTimeout: getDurationEnv("BACKEND_CB_RESET_TIMEOUT", 30*time.Second),
			CircuitBreakerHalfOpenSucc: getIntEnv("BACKEND_CB_HALF_OPEN_SUCCESSES", 3),
		},
		History: HistoryConfig{
			Source:               getEnv("HISTORY_SOURCE", HistorySourceDatabase),
			DefaultRange:         getEnv("HISTORY_DEFAULT_RANGE", "this_month"),
			SelectionTTL:         getDurationEnv("SELECTION_TTL", 10*time.Minute),
			SelectionCapacity:    getIntEnv("SELECTION_CAPACITY", 10000),
			SeedSampleData:       getBoolEnv("SEED_SAMPLE_DATA", false),
			SeedTransactionCount: getIntEnv("SEED_TRANSACTION_COUNT", 200),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
		},
	}

	config.Server.CORSAllowOrigins = splitOrigins(os.Getenv("CORS_ALLOW_ORIGINS"))

	var err error
	config.JWT.PrivateKey, config.JWT.PublicKey, err = config.loadJWTKeys()
	if err != nil {
		log.Fatalf("failed to load JWT keys: %v", err)
	}

	return config
}

// Validate reports every configuration problem at once
func (c *Config) Validate() error {
	var errs []error

	switch c.History.Source {
	case HistorySourceDatabase, HistorySourceRemote:
	default:
		errs = append(errs, fmt.Errorf("HISTORY_SOURCE must be %q or %q, got %q", HistorySourceDatabase, HistorySourceRemote, c.History.Source))
	}

	if !validDateRangeTokens[c.History.DefaultRange] {
		errs = append(errs, fmt.Errorf("HISTORY_DEFAULT_RANGE %q is not a preset date range", c.History.DefaultRange))
	}

	if c.History.SelectionTTL <= 0 {
		errs = append(errs, errors.New("SELECTION_TTL must be positive"))
	}

	if c.History.SelectionCapacity <= 0 {
		errs = append(errs, errors.New("SELECTION_CAPACITY must be positive"))
	}

	if c.History.Source == HistorySourceRemote {
		if c.Backend.BaseURL == "" {
			errs = append(errs, errors.New("BACKEND_BASE_URL is required when HISTORY_SOURCE is remote"))
		}
		if c.Backend.Timeout <= 0 {
			errs = append(errs, errors.New("BACKEND_TIMEOUT must be positive"))
		}
	}

	switch c.Database.Driver {
	case DatabaseDriverPostgres, DatabaseDriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DatabaseDriverPostgres, DatabaseDriverSQLite, c.Database.Driver))
	}

	if c.Security.RateLimitPerSecond <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND must be positive"))
	}

	return errors.Join(errs...)
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadJWTKeys resolves the RS256 keys for access tokens. The public key alone
// verifies backend-issued tokens; the private key only mints development tokens.
// Outside production a throwaway pair is generated when neither is configured.
func (c *Config) loadJWTKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	publicPEM, err := decodeKeyEnv("JWT_PUBLIC_KEY")
	if err != nil {
		return nil, nil, err
	}
	privatePEM, err := decodeKeyEnv("JWT_PRIVATE_KEY")
	if err != nil {
		return nil, nil, err
	}

	if publicPEM == nil {
		if c.IsProduction() {
			return nil, nil, errors.New("JWT_PUBLIC_KEY must be set in production")
		}
		slog.Info("generating a throwaway RSA keypair; set JWT_PUBLIC_KEY to accept backend tokens")
		return GenerateRSAKeyPair()
	}

	publicKey, err := loadRSAPublicKey(publicPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("JWT_PUBLIC_KEY: %w", err)
	}
	if privatePEM == nil {
		return nil, publicKey, nil
	}

	privateKey, err := loadRSAPrivateKey(privatePEM)
	if err != nil {
		return nil, nil, fmt.Errorf("JWT_PRIVATE_KEY: %w", err)
	}
	if !privateKey.PublicKey.Equal(publicKey) {
		return nil, nil, errors.New("JWT_PRIVATE_KEY does not match JWT_PUBLIC_KEY")
	}
	return privateKey, publicKey, nil
}

// decodeKeyEnv returns the PEM bytes held base64-encoded in the named variable, or nil when unset
func decodeKeyEnv(name string) ([]byte, error) {
	value := os.Getenv(name)
	if value == "" {
		return nil, nil
	}
	pemData, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return pemData, nil
}

// splitOrigins parses a comma separated origin list, defaulting to every origin
func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"*"}
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}
	return privateKey, &privateKey.PublicKey, nil
}

// loadRSAPrivateKey accepts PKCS#1 and PKCS#8 encodings
func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return rsaKey, nil
}

func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}
	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}
	return rsaKey, nil
}
