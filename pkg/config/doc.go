// Package config provides configuration management for the keyturn
// server.
//
// Configuration is loaded from a YAML file with environment-variable
// overrides; the environment always wins. A config that fails
// validation is fatal at startup, before any registry is opened.
//
// # Settings
//
//   - host, port: HTTP listener (KEYTURN_HOST, KEYTURN_PORT)
//   - secret_key: administrative token (KEYTURN_SECRET_KEY)
//   - keys_path, users_path: registry files (KEYTURN_KEYS_PATH, KEYTURN_USERS_PATH)
//   - provision_script: account-creation collaborator (KEYTURN_PROVISION_SCRIPT)
//   - provision_timeout: collaborator timeout in seconds (KEYTURN_PROVISION_TIMEOUT)
//   - proxy_address, proxy_port: proxy endpoint for the redemption
//     deep link (KEYTURN_PROXY_ADDRESS, KEYTURN_PROXY_PORT)
//
// Watch can hot-reload the file so the admin secret can be rotated
// without a restart.
package config
