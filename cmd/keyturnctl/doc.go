// Package keyturn implements a single-use access key vending server.
//
// Administrators issue opaque random keys; an end user redeems a key
// together with a chosen login and password, which runs an external
// provisioning script that creates the backing proxy account. Both the
// pool of unredeemed keys and the redeemed users survive restarts in
// plain line-oriented files.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/store: durable registries and flush scheduling
//   - pkg/engine: the key lifecycle (issue, list, revoke, redeem)
//   - pkg/provision: the external account-provisioning step
//   - pkg/server: HTTP transport and routing
//   - pkg/server/endpoints: HTTP endpoint handlers
//   - pkg/audit: audit logging
//   - pkg/config: configuration management
//
// # Quick Start
//
//	# Generate an administrative secret
//	keyturnctl secret generate
//
//	# Start the server
//	keyturnctl server --config /etc/keyturn/keyturn.yml
//
//	# Issue and inspect keys against the running server
//	keyturnctl key issue --secret <admin secret> "for dave"
//	keyturnctl key list --secret <admin secret>
//
// # Environment Variables
//
//   - KEYTURN_CONFIG: configuration file path
//   - KEYTURN_SECRET_KEY: administrative token (overrides the file)
//   - KEYTURN_AUDIT_ENABLED: set to "false" to silence audit logging
//   - AUDIT_DATABASE_URL: optional Postgres sink for audit events
package main
