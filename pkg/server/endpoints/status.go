package endpoints

import (
	"errors"
	"html"
	"net/http"
	"strings"

	"github.com/keyturn/keyturn/pkg/engine"
	"github.com/keyturn/keyturn/pkg/server"
	"github.com/keyturn/keyturn/pkg/server/middleware"
)

// RegisterStatusEndpoint registers the administrative listing endpoint.
func RegisterStatusEndpoint(s *server.Server) {
	s.Router.Handle("/stats",
		middleware.AdminToken(handleStatus(s.Engine)),
	).Methods("GET")
}

func handleStatus(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.TokenFromContext(r.Context())

		listing, err := eng.List(token)
		if err != nil {
			if errors.Is(err, engine.ErrUnauthorized) {
				respondHTML(w, http.StatusUnauthorized, errorPage)
				return
			}
			respondHTML(w, http.StatusInternalServerError, errorPage)
			return
		}

		const br = "<br/>"
		var b strings.Builder
		b.WriteString("Unused keys:" + br)
		for _, entry := range listing.Keys {
			b.WriteString(" " + entry.ID + " : " + html.EscapeString(entry.Value) + br)
		}
		b.WriteString(br)
		b.WriteString("Users:" + br)
		// Listing values are already reduced to the login by the
		// engine; no password reaches this page.
		for _, entry := range listing.Users {
			b.WriteString(" " + entry.ID + " : " + html.EscapeString(entry.Value) + br)
		}

		respondHTML(w, http.StatusOK, b.String())
	}
}
