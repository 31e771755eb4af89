package engine

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/keyturn/keyturn/pkg/audit"
	"github.com/keyturn/keyturn/pkg/provision"
	"github.com/keyturn/keyturn/pkg/store"
)

// credentialPattern is the allow-list for logins and passwords. The
// character class keeps credentials shell-argument and line-format
// safe.
var credentialPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// commentSanitizer keeps comments single-line so they survive the
// line-oriented registry format on reload.
var commentSanitizer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Config wires an Engine's collaborators together.
type Config struct {
	// Keys holds unredeemed key identifiers mapped to their comment.
	Keys *store.Registry

	// Users holds redeemed identifiers mapped to "login:password".
	Users *store.Registry

	// Provisioner performs the external account-creation step.
	Provisioner provision.Provisioner

	// Flush schedules durable writes after mutations.
	Flush store.Scheduler

	// Secret is the static administrative authorization token.
	Secret string

	// ProxyAddress and ProxyPort name the proxy endpoint embedded in
	// the redemption deep link.
	ProxyAddress string
	ProxyPort    int
}

// Listing is a read-only snapshot of both registries. User values are
// reduced to the login; passwords never leave the user registry
// through a listing.
type Listing struct {
	Keys  []store.Entry
	Users []store.Entry
}

// Engine orchestrates the key lifecycle: issue, list, revoke, redeem.
// All methods are safe for concurrent use.
type Engine struct {
	keys        *store.Registry
	users       *store.Registry
	provisioner provision.Provisioner
	flush       store.Scheduler

	secretMu sync.RWMutex
	secret   []byte

	proxyAddress string
	proxyPort    int
}

// New creates an Engine from cfg.
func New(cfg Config) *Engine {
	return &Engine{
		keys:         cfg.Keys,
		users:        cfg.Users,
		provisioner:  cfg.Provisioner,
		flush:        cfg.Flush,
		secret:       []byte(cfg.Secret),
		proxyAddress: cfg.ProxyAddress,
		proxyPort:    cfg.ProxyPort,
	}
}

// SetSecret replaces the administrative token, for config hot-reload.
func (e *Engine) SetSecret(secret string) {
	e.secretMu.Lock()
	e.secret = []byte(secret)
	e.secretMu.Unlock()
}

func (e *Engine) authorize(operation, token string) error {
	e.secretMu.RLock()
	secret := e.secret
	e.secretMu.RUnlock()

	if token == "" || subtle.ConstantTimeCompare([]byte(token), secret) != 1 {
		audit.Log(audit.AuthnEvent{Operation: operation, Success: false})
		return ErrUnauthorized
	}
	return nil
}

// Issue generates a fresh key identifier, records it with the given
// comment, and schedules a flush. It cannot fail once authorized.
func (e *Engine) Issue(token, comment string) (string, error) {
	if err := e.authorize("issue", token); err != nil {
		return "", err
	}

	id := uuid.NewString()
	comment = commentSanitizer.Replace(comment)
	e.keys.Put(id, comment)
	e.flush.Schedule(e.keys)

	audit.Log(audit.IssueEvent{KeyID: id, Comment: comment})
	log.Printf("issued key %s with comment %q", id, comment)
	return id, nil
}

// List returns a snapshot of both registries for administrative
// display.
func (e *Engine) List(token string) (Listing, error) {
	if err := e.authorize("list", token); err != nil {
		return Listing{}, err
	}

	users := e.users.Snapshot()
	for i, entry := range users {
		users[i].Value = loginOf(entry.Value)
	}
	listing := Listing{Keys: e.keys.Snapshot(), Users: users}

	audit.Log(audit.ListEvent{KeyCount: len(listing.Keys), UserCount: len(listing.Users)})
	return listing, nil
}

// Revoke removes an unredeemed key and returns its comment. A missing
// identifier yields ErrKeyNotFound and no side effect.
func (e *Engine) Revoke(token, id string) (string, error) {
	if err := e.authorize("revoke", token); err != nil {
		return "", err
	}

	comment, ok := e.keys.Remove(id)
	if !ok {
		audit.Log(audit.RevokeEvent{KeyID: id, Found: false})
		return "", ErrKeyNotFound
	}
	e.flush.Schedule(e.keys)

	audit.Log(audit.RevokeEvent{KeyID: id, Comment: comment, Found: true})
	log.Printf("revoked key %s with comment %q", id, comment)
	return comment, nil
}

// Redeem exchanges an issued key for a provisioned account. On any
// failure after the key has been removed, the key is restored so the
// attempt leaves no trace: a malformed or unprovisionable request must
// not consume a valid key.
//
// A concurrent List may briefly observe the identifier in neither
// registry while a redemption is in flight; once Redeem returns, the
// identifier is in exactly one.
func (e *Engine) Redeem(ctx context.Context, token, id, login, password string) (string, error) {
	if err := e.authorize("redeem", token); err != nil {
		return "", err
	}

	comment, ok := e.keys.Remove(id)
	if !ok {
		audit.Log(audit.RedeemEvent{KeyID: id, Login: login, ErrorMessage: "key not found"})
		return "", ErrKeyNotFound
	}

	if credErr := validateCredentials(login, password); credErr != nil {
		e.keys.Put(id, comment)
		e.flush.Schedule(e.keys)
		audit.Log(audit.RedeemEvent{KeyID: id, Login: login, ErrorMessage: credErr.Redacted()})
		return "", credErr
	}

	result, err := e.provisioner.Provision(ctx, login, password)
	if err != nil || !result.Success() {
		e.keys.Put(id, comment)
		e.flush.Schedule(e.keys)

		provErr := &ProvisioningError{
			ExitCode: result.ExitCode,
			Output:   string(result.Output),
			Err:      err,
		}
		audit.Log(audit.RedeemEvent{KeyID: id, Login: login, ErrorMessage: provErr.Error()})
		log.Printf("provisioning failed for key %s login %s: %v", id, login, provErr)
		return "", provErr
	}

	e.users.Put(id, login+store.Separator+password)
	e.flush.Schedule(e.users)
	e.flush.Schedule(e.keys)

	audit.Log(audit.RedeemEvent{KeyID: id, Login: login, Success: true})
	log.Printf("key %s redeemed by %s", id, login)
	return e.deepLink(login, password), nil
}

func validateCredentials(login, password string) *InvalidCredentialError {
	if !credentialPattern.MatchString(login) {
		return &InvalidCredentialError{Field: "login", Value: login, Pattern: credentialPattern.String()}
	}
	if !credentialPattern.MatchString(password) {
		return &InvalidCredentialError{Field: "password", Value: password, Pattern: credentialPattern.String()}
	}
	return nil
}

// deepLink builds the tg://socks link handed to a freshly provisioned
// user. Credentials have already passed the allow-list, so they are
// URL-safe as-is.
func (e *Engine) deepLink(login, password string) string {
	return fmt.Sprintf("tg://socks?server=%s&port=%d&user=%s&pass=%s",
		e.proxyAddress, e.proxyPort, login, password)
}

// loginOf reduces a stored "login:password" pair to its login.
func loginOf(credential string) string {
	login, _, _ := strings.Cut(credential, store.Separator)
	return login
}
