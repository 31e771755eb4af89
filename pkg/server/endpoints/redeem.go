package endpoints

import (
	"errors"
	"fmt"
	"html"
	"net/http"

	"github.com/keyturn/keyturn/pkg/engine"
	"github.com/keyturn/keyturn/pkg/server"
	"github.com/keyturn/keyturn/pkg/server/middleware"
)

// RegisterRedeemEndpoint registers the key redemption endpoint.
func RegisterRedeemEndpoint(s *server.Server) {
	s.Router.Handle("/auth",
		middleware.AdminToken(handleRedeem(s.Engine)),
	).Methods("GET")
}

func handleRedeem(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.TokenFromContext(r.Context())
		query := r.URL.Query()

		id := query.Get("id")
		if id == "" {
			respondHTML(w, http.StatusBadRequest, missingIDResponse)
			return
		}
		login := query.Get("login")
		if login == "" {
			respondHTML(w, http.StatusBadRequest, missingLoginResponse)
			return
		}
		password := query.Get("password")
		if password == "" {
			respondHTML(w, http.StatusBadRequest, missingPasswdResponse)
			return
		}

		link, err := eng.Redeem(r.Context(), token, id, login, password)
		if err == nil {
			respondHTML(w, http.StatusOK, fmt.Sprintf(`<a href="%s">Click me!</a>`, link))
			return
		}

		var credErr *engine.InvalidCredentialError
		var provErr *engine.ProvisioningError
		switch {
		case errors.Is(err, engine.ErrUnauthorized):
			respondHTML(w, http.StatusUnauthorized, errorPage)
		case errors.Is(err, engine.ErrKeyNotFound):
			// An unknown identifier gets the same page as a bad
			// admin token; redemption attempts are not an oracle.
			respondHTML(w, http.StatusNotFound, errorPage)
		case errors.As(err, &credErr):
			body := fmt.Sprintf("Invalid %s %s, allowed %s",
				credErr.Field, html.EscapeString(credErr.Value), credErr.Pattern)
			respondHTML(w, http.StatusBadRequest, body)
		case errors.As(err, &provErr):
			if provErr.Err != nil {
				respondHTML(w, http.StatusBadGateway, "Couldn't exec process")
				return
			}
			respondHTML(w, http.StatusBadGateway, "Couldn't create account")
		default:
			respondHTML(w, http.StatusInternalServerError, errorPage)
		}
	}
}
