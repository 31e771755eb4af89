package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the server looks for its configuration
// when neither the flag nor KEYTURN_CONFIG says otherwise.
const DefaultConfigPath = "/etc/keyturn/keyturn.yml"

// Config holds all keyturn server settings.
type Config struct {
	// Host is the bind address for the HTTP listener.
	Host string `yaml:"host"`

	// Port is the HTTP listen port.
	Port int `yaml:"port"`

	// SecretKey is the static administrative authorization token.
	SecretKey string `yaml:"secret_key"`

	// KeysPath is the durable file backing the key registry.
	KeysPath string `yaml:"keys_path"`

	// UsersPath is the durable file backing the user registry.
	UsersPath string `yaml:"users_path"`

	// ProvisionScript is the external collaborator invoked with
	// (login, password) on redemption.
	ProvisionScript string `yaml:"provision_script"`

	// ProvisionTimeout bounds a provisioning run, in seconds. Zero
	// means the provisioner's default.
	ProvisionTimeout int `yaml:"provision_timeout"`

	// ProxyAddress and ProxyPort name the proxy endpoint embedded in
	// the redemption deep link.
	ProxyAddress string `yaml:"proxy_address"`
	ProxyPort    int    `yaml:"proxy_port"`
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		Host: "0.0.0.0",
		Port: 8000,
	}
}

// Load reads the configuration file at path and applies environment
// variable overrides (KEYTURN_*). Environment variables take precedence
// over file values. A missing or invalid configuration is an error; the
// caller is expected to treat it as fatal.
func Load(path string) (*Config, error) {
	cfg := newDefault()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	stringVars := map[string]*string{
		"KEYTURN_HOST":             &c.Host,
		"KEYTURN_SECRET_KEY":       &c.SecretKey,
		"KEYTURN_KEYS_PATH":        &c.KeysPath,
		"KEYTURN_USERS_PATH":       &c.UsersPath,
		"KEYTURN_PROVISION_SCRIPT": &c.ProvisionScript,
		"KEYTURN_PROXY_ADDRESS":    &c.ProxyAddress,
	}
	for name, target := range stringVars {
		if value := os.Getenv(name); value != "" {
			*target = value
		}
	}

	intVars := map[string]*int{
		"KEYTURN_PORT":              &c.Port,
		"KEYTURN_PROVISION_TIMEOUT": &c.ProvisionTimeout,
		"KEYTURN_PROXY_PORT":        &c.ProxyPort,
	}
	for name, target := range intVars {
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		*target = parsed
	}

	return nil
}

func (c *Config) validate() error {
	required := map[string]string{
		"secret_key":       c.SecretKey,
		"keys_path":        c.KeysPath,
		"users_path":       c.UsersPath,
		"provision_script": c.ProvisionScript,
		"proxy_address":    c.ProxyAddress,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("missing required setting %s", name)
		}
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ProxyPort <= 0 || c.ProxyPort > 65535 {
		return fmt.Errorf("invalid proxy_port %d", c.ProxyPort)
	}
	if c.ProvisionTimeout < 0 {
		return fmt.Errorf("invalid provision_timeout %d", c.ProvisionTimeout)
	}

	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// ProvisionTimeoutDuration returns the provisioning timeout as a
// duration; zero if unset.
func (c *Config) ProvisionTimeoutDuration() time.Duration {
	return time.Duration(c.ProvisionTimeout) * time.Second
}
