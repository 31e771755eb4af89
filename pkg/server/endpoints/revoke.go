package endpoints

import (
	"errors"
	"net/http"

	"github.com/keyturn/keyturn/pkg/engine"
	"github.com/keyturn/keyturn/pkg/server"
	"github.com/keyturn/keyturn/pkg/server/middleware"
)

// RegisterRevokeEndpoint registers the key revocation endpoint.
func RegisterRevokeEndpoint(s *server.Server) {
	s.Router.Handle("/remove",
		middleware.AdminToken(handleRevoke(s.Engine)),
	).Methods("GET")
}

func handleRevoke(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.TokenFromContext(r.Context())
		id := r.URL.Query().Get("id")
		if id == "" {
			respondHTML(w, http.StatusBadRequest, missingIDResponse)
			return
		}

		_, err := eng.Revoke(token, id)
		switch {
		case err == nil:
			respondHTML(w, http.StatusOK, keyRemovedResponse)
		case errors.Is(err, engine.ErrUnauthorized):
			respondHTML(w, http.StatusUnauthorized, errorPage)
		case errors.Is(err, engine.ErrKeyNotFound):
			respondHTML(w, http.StatusNotFound, keyNotFoundResponse)
		default:
			respondHTML(w, http.StatusInternalServerError, errorPage)
		}
	}
}
