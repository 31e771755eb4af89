// Package endpoints binds the lifecycle operations to their HTTP
// routes. Every route takes the administrative token as the "key"
// query parameter; the response bodies are plain HTML.
package endpoints

import (
	"github.com/keyturn/keyturn/pkg/server"
)

// RegisterAll registers every endpoint on the server.
func RegisterAll(srv *server.Server) {
	RegisterIssueEndpoint(srv)
	RegisterStatusEndpoint(srv)
	RegisterRevokeEndpoint(srv)
	RegisterRedeemEndpoint(srv)

	// Catch-all, registered last.
	RegisterErrorPage(srv)
}
