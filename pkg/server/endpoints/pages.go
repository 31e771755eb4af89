package endpoints

import (
	"net/http"

	"github.com/keyturn/keyturn/pkg/server"
)

// Response bodies, kept as plain HTML strings. The page shapes are a
// deliberate carry-over from the service this one replaces.
const (
	// errorPage is served for unknown routes and rejected
	// administrative tokens alike, so probing reveals nothing.
	errorPage = `<iframe width="100%" height="100%" src="https://www.youtube.com/embed/7OBx-YwPl8g?autoplay=1" frameborder="0" allowfullscreen></iframe>`

	keyRemovedResponse    = "Secret key removed"
	keyNotFoundResponse   = "Secret key not found"
	missingIDResponse     = "Enter the key identifier"
	missingLoginResponse  = "Enter login"
	missingPasswdResponse = "Enter password"
)

// RegisterErrorPage makes every unmatched route serve the error page.
func RegisterErrorPage(s *server.Server) {
	s.Router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondHTML(w, http.StatusNotFound, errorPage)
	})
}
