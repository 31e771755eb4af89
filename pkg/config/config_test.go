package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const validYAML = `
host: 127.0.0.1
port: 9000
secret_key: hunter2
keys_path: /var/lib/keyturn/keys
users_path: /var/lib/keyturn/users
provision_script: /usr/local/bin/provision.sh
provision_timeout: 10
proxy_address: proxy.example.com
proxy_port: 1080
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keyturn.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9000", cfg.Addr())
	require.Equal(t, "hunter2", cfg.SecretKey)
	require.Equal(t, "/var/lib/keyturn/keys", cfg.KeysPath)
	require.Equal(t, 10*time.Second, cfg.ProvisionTimeoutDuration())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
secret_key: hunter2
keys_path: /tmp/keys
users_path: /tmp/users
provision_script: /tmp/provision.sh
proxy_address: proxy.example.com
proxy_port: 1080
`))
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Host)
	require.Equal(t, 8000, cfg.Port)
	require.Equal(t, time.Duration(0), cfg.ProvisionTimeoutDuration())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("KEYTURN_SECRET_KEY", "from-env")
	t.Setenv("KEYTURN_PORT", "9999")

	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.SecretKey)
	require.Equal(t, 9999, cfg.Port)
}

func TestLoadBadEnvInt(t *testing.T) {
	t.Setenv("KEYTURN_PORT", "not-a-port")

	_, err := Load(writeConfig(t, validYAML))
	require.ErrorContains(t, err, "KEYTURN_PORT")
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"missing secret", `
keys_path: /tmp/keys
users_path: /tmp/users
provision_script: /tmp/p.sh
proxy_address: p.example.com
proxy_port: 1080
`, "secret_key"},
		{"bad port", `
port: 99999
secret_key: s
keys_path: /tmp/keys
users_path: /tmp/users
provision_script: /tmp/p.sh
proxy_address: p.example.com
proxy_port: 1080
`, "invalid port"},
		{"missing proxy port", `
secret_key: s
keys_path: /tmp/keys
users_path: /tmp/users
provision_script: /tmp/p.sh
proxy_address: p.example.com
`, "proxy_port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, validYAML)

	reloaded := make(chan *Config, 1)
	w, err := Watch(path, func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	rotated := validYAML + "\n" // touch content
	require.NoError(t, os.WriteFile(path, []byte(rotated), 0o600))

	select {
	case cfg := <-reloaded:
		require.Equal(t, "hunter2", cfg.SecretKey)
	case <-time.After(5 * time.Second):
		t.Fatal("config watcher never fired")
	}
}
