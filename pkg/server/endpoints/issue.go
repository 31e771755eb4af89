package endpoints

import (
	"errors"
	"net/http"

	"github.com/keyturn/keyturn/pkg/engine"
	"github.com/keyturn/keyturn/pkg/server"
	"github.com/keyturn/keyturn/pkg/server/middleware"
)

// RegisterIssueEndpoint registers the key issuance endpoint.
func RegisterIssueEndpoint(s *server.Server) {
	s.Router.Handle("/generate",
		middleware.AdminToken(handleIssue(s.Engine)),
	).Methods("GET")
}

func handleIssue(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.TokenFromContext(r.Context())
		comment := r.URL.Query().Get("comment")

		id, err := eng.Issue(token, comment)
		if err != nil {
			if errors.Is(err, engine.ErrUnauthorized) {
				respondHTML(w, http.StatusUnauthorized, errorPage)
				return
			}
			respondHTML(w, http.StatusInternalServerError, errorPage)
			return
		}

		respondHTML(w, http.StatusOK, id)
	}
}
