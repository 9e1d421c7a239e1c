// Package config provides configuration loading and management for the mirror middleware.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/casamatriz/mirror-middleware/internal/telemetry"
)

const (
	// EnvPrefix is the prefix for environment variables that override configuration keys
	EnvPrefix = "MIRROR"

	// DefaultClusterPort is the port every cluster node listens on
	DefaultClusterPort = 5432

	// DefaultProbeTimeout bounds the connect phase of a single node probe
	DefaultProbeTimeout = 2 * time.Second

	// DefaultWritePoolSize is the capacity of a short-lived write pool
	DefaultWritePoolSize = 10

	// DefaultInventoryEndpoint is the base URL of the inventory service
	DefaultInventoryEndpoint = "http://app1-backend:3000"
)

// DefaultCandidates is the conventional ordered candidate list. The first entry is the
// designated primary and the fallback answer when no node confirms it is writable.
var DefaultCandidates = []string{"pg-primary", "pg-replica1", "pg-replica2", "pg-replica3"}

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
	env  bool
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// WithoutEnvironment disables environment variable overrides (useful in tests)
func WithoutEnvironment() Option {
	return func(cfg *loaderConfig) error {
		cfg.env = false
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	Database  DatabaseConfig    `mapstructure:"database" yaml:"database"`
	Cluster   ClusterConfig     `mapstructure:"cluster" yaml:"cluster"`
	Inventory InventoryConfig   `mapstructure:"inventory" yaml:"inventory"`
	Secondary SecondaryConfig   `mapstructure:"secondary" yaml:"secondary"`
	Sync      SyncConfig        `mapstructure:"sync" yaml:"sync"`
	Telemetry *telemetry.Config `mapstructure:"telemetry" yaml:"telemetry,omitempty"`
}

// DatabaseConfig defines the local cluster database settings shared by the read pool
// and by every short-lived write pool
type DatabaseConfig struct {
	// User is the database username
	User string `mapstructure:"user" yaml:"user" validate:"required"`

	// Password is the database password. PasswordFile takes precedence when set.
	Password string `mapstructure:"password" yaml:"password,omitempty"`

	// PasswordFile is the path to a file containing the database password
	PasswordFile string `mapstructure:"passwordFile" yaml:"passwordFile,omitempty"`

	// Name is the database name
	Name string `mapstructure:"name" yaml:"name" validate:"required"`

	// ReadHost is the replica serving the long-lived read pool
	ReadHost string `mapstructure:"readHost" yaml:"readHost" validate:"required"`

	// SSLMode is the SSL mode for the connection (disable, require, verify-ca, verify-full)
	SSLMode string `mapstructure:"sslMode" yaml:"sslMode,omitempty" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`

	// MaxOpenConns is the maximum number of connections in the read pool
	MaxOpenConns int32 `mapstructure:"maxOpenConns" yaml:"maxOpenConns,omitempty" validate:"gte=0"`

	// ConnMaxLifetime is the maximum lifetime of a read pool connection (e.g., "1h", "30m")
	ConnMaxLifetime string `mapstructure:"connMaxLifetime" yaml:"connMaxLifetime,omitempty"`
}

// ClusterConfig defines how the primary node is discovered and written to
type ClusterConfig struct {
	// Candidates is the ordered list of node hosts probed for the writable primary
	Candidates []string `mapstructure:"candidates" yaml:"candidates" validate:"required,min=1,dive,required"`

	// Port is the port shared by every cluster node
	Port int `mapstructure:"port" yaml:"port" validate:"min=1,max=65535"`

	// ProbeTimeout bounds the connect phase of each node probe (e.g., "2s")
	ProbeTimeout string `mapstructure:"probeTimeout" yaml:"probeTimeout,omitempty"`

	// WritePoolSize is the maximum number of connections in a per-operation write pool
	WritePoolSize int32 `mapstructure:"writePoolSize" yaml:"writePoolSize,omitempty" validate:"gte=0"`
}

// InventoryConfig defines the inventory service endpoint
type InventoryConfig struct {
	// Endpoint is the base API URL (without path); /lists and /items are appended
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" validate:"required,url"`

	// Timeout bounds each request to the inventory service (e.g., "10s")
	Timeout string `mapstructure:"timeout" yaml:"timeout,omitempty"`
}

// SecondaryConfig defines the secondary store connection settings
type SecondaryConfig struct {
	Host         string `mapstructure:"host" yaml:"host" validate:"required"`
	Port         int    `mapstructure:"port" yaml:"port" validate:"min=1,max=65535"`
	User         string `mapstructure:"user" yaml:"user" validate:"required"`
	Password     string `mapstructure:"password" yaml:"password,omitempty"`
	PasswordFile string `mapstructure:"passwordFile" yaml:"passwordFile,omitempty"`
	Database     string `mapstructure:"database" yaml:"database" validate:"required"`
	SSLMode      string `mapstructure:"sslMode" yaml:"sslMode,omitempty" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
}

// SyncConfig defines synchronization settings
type SyncConfig struct {
	// Interval enables the background sync coordinator when set (e.g., "5m")
	Interval string `mapstructure:"interval" yaml:"interval,omitempty"`

	// Atomic wraps every sync call's upserts in a single transaction
	Atomic bool `mapstructure:"atomic" yaml:"atomic,omitempty"`

	// StatusDir keeps the last run of each source on disk across restarts when set
	StatusDir string `mapstructure:"statusDir" yaml:"statusDir,omitempty"`
}

// LoadConfig loads configuration from defaults, an optional YAML file and the environment.
// Recognized environment variables are DB_USER, DB_PASS, DB_NAME and DB_HOST_READ, plus every
// key spelled MIRROR_<SECTION>_<KEY> (for instance MIRROR_SYNC_INTERVAL or
// MIRROR_TELEMETRY_METRICS_EXPORTER).
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{env: true}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	setDefaults(v)

	if loaderCfg.env {
		if err := bindEnvironment(v); err != nil {
			return nil, err
		}
	}

	if loaderCfg.path != "" {
		v.SetConfigFile(loaderCfg.path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "rootpass")
	v.SetDefault("database.name", "biblioteca")
	v.SetDefault("database.readHost", "pg-replica1")
	v.SetDefault("database.sslMode", "disable")

	v.SetDefault("cluster.candidates", DefaultCandidates)
	v.SetDefault("cluster.port", DefaultClusterPort)
	v.SetDefault("cluster.probeTimeout", DefaultProbeTimeout.String())
	v.SetDefault("cluster.writePoolSize", DefaultWritePoolSize)

	v.SetDefault("inventory.endpoint", DefaultInventoryEndpoint)

	v.SetDefault("secondary.host", "haproxy")
	v.SetDefault("secondary.port", 5001)
	v.SetDefault("secondary.user", "admin")
	v.SetDefault("secondary.password", "adminpassword")
	v.SetDefault("secondary.database", "hospital_db")
	v.SetDefault("secondary.sslMode", "disable")
}

func bindEnvironment(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	legacy := map[string]string{
		"database.user":     "DB_USER",
		"database.password": "DB_PASS",
		"database.name":     "DB_NAME",
		"database.readHost": "DB_HOST_READ",
	}

	// Unmarshal only sees keys viper knows about, so every leaf without a default
	// has to be bound explicitly
	for _, key := range leafKeys(reflect.TypeOf(Config{}), "") {
		envs := []string{key, envName(key)}
		if env, ok := legacy[key]; ok {
			// the prefixed name wins over the legacy one when both are set
			envs = append(envs, env)
		}
		if err := v.BindEnv(envs...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// leafKeys lists the dotted mapstructure keys of every non-struct field under t
func leafKeys(t reflect.Type, prefix string) []string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var keys []string
	for i := range t.NumField() {
		field := t.Field(i)
		tag, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if tag == "" || tag == "-" {
			continue
		}
		key := prefix + tag

		ft := field.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			keys = append(keys, leafKeys(ft, key+".")...)
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if c.Database.ConnMaxLifetime != "" {
		if _, err := time.ParseDuration(c.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("database.connMaxLifetime must be a valid duration: %w", err)
		}
	}
	if err := validateDuration("cluster.probeTimeout", c.Cluster.ProbeTimeout); err != nil {
		return err
	}
	if err := validateDuration("inventory.timeout", c.Inventory.Timeout); err != nil {
		return err
	}
	if err := validateDuration("sync.interval", c.Sync.Interval); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.Cluster.Candidates))
	for i, host := range c.Cluster.Candidates {
		if seen[host] {
			return fmt.Errorf("cluster.candidates[%d]: duplicate candidate '%s'", i, host)
		}
		seen[host] = true
	}

	if c.Telemetry != nil {
		if err := c.Telemetry.Validate(); err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
	}

	return nil
}

func validateDuration(key, value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s must be a valid duration (e.g., '2s', '5m'): %w", key, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s must be positive, got %s", key, value)
	}
	return nil
}

// GetPassword returns the database password, preferring PasswordFile over Password.
// The password from file will have leading/trailing whitespace trimmed.
func (d *DatabaseConfig) GetPassword() (string, error) {
	return readPassword(d.PasswordFile, d.Password)
}

// GetPassword returns the secondary store password, preferring PasswordFile over Password.
func (s *SecondaryConfig) GetPassword() (string, error) {
	return readPassword(s.PasswordFile, s.Password)
}

func readPassword(file, inline string) (string, error) {
	if file == "" {
		return inline, nil
	}

	cleanPath := filepath.Clean(file)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", fmt.Errorf("failed to read password from file %s: %w", file, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ConnectionStringFor builds a PostgreSQL connection string for the given cluster node.
// The password is URL-escaped to handle special characters safely.
func (c *Config) ConnectionStringFor(host string) (string, error) {
	password, err := c.Database.GetPassword()
	if err != nil {
		return "", err
	}
	return buildConnString(c.Database.User, password, host, c.Cluster.Port, c.Database.Name, c.Database.SSLMode), nil
}

// ReadConnectionString builds the connection string of the long-lived read pool
func (c *Config) ReadConnectionString() (string, error) {
	return c.ConnectionStringFor(c.Database.ReadHost)
}

// GetConnectionString builds the connection string of the secondary store
func (s *SecondaryConfig) GetConnectionString() (string, error) {
	password, err := s.GetPassword()
	if err != nil {
		return "", err
	}
	return buildConnString(s.User, password, s.Host, s.Port, s.Database, s.SSLMode), nil
}

func buildConnString(user, password, host string, port int, database, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(host, strconv.Itoa(port)),
		Path:     "/" + database,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}

// GetProbeTimeout returns the per-node probe timeout, defaulting to 2 seconds
func (c *ClusterConfig) GetProbeTimeout() time.Duration {
	return parseDurationOr(c.ProbeTimeout, DefaultProbeTimeout)
}

// GetWritePoolSize returns the write pool capacity, defaulting to 10
func (c *ClusterConfig) GetWritePoolSize() int32 {
	if c.WritePoolSize <= 0 {
		return DefaultWritePoolSize
	}
	return c.WritePoolSize
}

// DefaultCandidate returns the designated primary, the first configured candidate
func (c *ClusterConfig) DefaultCandidate() string {
	if len(c.Candidates) == 0 {
		return DefaultCandidates[0]
	}
	return c.Candidates[0]
}

// GetTimeout returns the inventory request timeout; zero means the client default
func (i *InventoryConfig) GetTimeout() time.Duration {
	return parseDurationOr(i.Timeout, 0)
}

// GetInterval returns the background sync interval; zero disables background sync
func (s *SyncConfig) GetInterval() time.Duration {
	return parseDurationOr(s.Interval, 0)
}

// GetConnMaxLifetime returns the read pool connection lifetime; zero keeps the pgxpool default
func (d *DatabaseConfig) GetConnMaxLifetime() time.Duration {
	return parseDurationOr(d.ConnMaxLifetime, 0)
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
