package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override secrets from the config file
const (
	EnvRelayerPrivateKey = "RELAYER_PRIVATE_KEY"
	EnvOperatorJWTSecret = "OPERATOR_JWT_SECRET"
)

// Config represents the relay service configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Ethereum   EthereumConfig   `yaml:"ethereum"`
	Token      TokenConfig      `yaml:"token"`
	Paymaster  PaymasterConfig  `yaml:"paymaster"`
	Relayer    RelayerConfig    `yaml:"relayer"`
	Auth       AuthConfig       `yaml:"auth"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"3001" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" default:"10240"`
}

// EthereumConfig contains chain client settings
type EthereumConfig struct {
	RPCURL              string        `yaml:"rpc_url" validate:"required,url"`
	ChainID             int64         `yaml:"chain_id" default:"421614" validate:"gt=0"`
	RelayerPrivateKey   string        `yaml:"relayer_private_key" validate:"required"`
	RPCTimeout          time.Duration `yaml:"rpc_timeout" default:"10s" validate:"gt=0"`
	ReceiptTimeout      time.Duration `yaml:"receipt_timeout" default:"2m" validate:"gt=0"`
	ReceiptPollInterval time.Duration `yaml:"receipt_poll_interval" default:"2s"`
	// MaxGasPrice caps the suggested gas price in wei; empty means no cap
	MaxGasPrice string `yaml:"max_gas_price" validate:"omitempty,numeric"`
}

// TokenConfig describes the relayed stablecoin
type TokenConfig struct {
	Address  string `yaml:"address" validate:"required,eth_addr"`
	Symbol   string `yaml:"symbol" default:"USDC"`
	Decimals int32  `yaml:"decimals" default:"6" validate:"min=0,max=36"`
	// SpenderAddress is the account users approve; defaults to the relay wallet
	SpenderAddress string `yaml:"spender_address" validate:"omitempty,eth_addr"`
}

// PaymasterConfig contains gas sponsorship settings
type PaymasterConfig struct {
	Address        string        `yaml:"address" validate:"omitempty,eth_addr"`
	Enabled        bool          `yaml:"enabled" default:"true"`
	StatusCacheTTL time.Duration `yaml:"status_cache_ttl" default:"15s"`
}

// RelayerConfig contains execution engine settings
type RelayerConfig struct {
	Workers       int           `yaml:"workers" default:"8" validate:"min=1"`
	QueueSize     int           `yaml:"queue_size" default:"256" validate:"min=1"`
	Retention     time.Duration `yaml:"retention" default:"24h"`
	SweepInterval time.Duration `yaml:"sweep_interval" default:"1h"`
	// GasLimitMultiplierPct is applied to estimated gas, in percent
	GasLimitMultiplierPct uint64 `yaml:"gas_limit_multiplier_pct" default:"120" validate:"min=100"`
}

// AuthConfig holds operator authentication settings
type AuthConfig struct {
	OperatorJWTSecret string `yaml:"operator_jwt_secret"`
	JWTIssuer         string `yaml:"jwt_issuer" default:"castpay-relayer"`
}

// RateLimitConfig contains per-client request limits
type RateLimitConfig struct {
	Enabled  bool          `yaml:"enabled" default:"true"`
	Requests int           `yaml:"requests" default:"100" validate:"min=1"`
	Window   time.Duration `yaml:"window" default:"15m"`
	// IdleTTL controls when per-client limiters are forgotten
	IdleTTL time.Duration `yaml:"idle_ttl" default:"30m"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load reads configuration from a YAML file, applies defaults and
// environment overrides and validates the result.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration bytes
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvRelayerPrivateKey); v != "" {
		cfg.Ethereum.RelayerPrivateKey = v
	}
	if v := os.Getenv(EnvOperatorJWTSecret); v != "" {
		cfg.Auth.OperatorJWTSecret = v
	}
}

func validate(cfg *Config) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return err
	}
	if cfg.Paymaster.Enabled && cfg.Paymaster.Address == "" {
		return fmt.Errorf("paymaster.address is required when paymaster.enabled is true")
	}
	if cfg.Ethereum.ReceiptPollInterval >= cfg.Ethereum.ReceiptTimeout {
		return fmt.Errorf("ethereum.receipt_poll_interval must be shorter than ethereum.receipt_timeout")
	}
	return nil
}

// Address returns the listen address of the HTTP server
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
