package engine

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the caller's administrative token is
// missing or does not match the configured secret.
var ErrUnauthorized = errors.New("unauthorized")

// ErrKeyNotFound is returned when an operation references a key
// identifier that is not in the key registry.
var ErrKeyNotFound = errors.New("key not found")

// InvalidCredentialError reports a login or password that fails the
// allow-list pattern. The pattern is included so the caller can see
// what is accepted.
type InvalidCredentialError struct {
	Field   string
	Value   string
	Pattern string
}

func (e *InvalidCredentialError) Error() string {
	return fmt.Sprintf("invalid %s %q, allowed %s", e.Field, e.Value, e.Pattern)
}

// Redacted returns the message with the rejected value omitted for
// password failures. Audit and log lines use this form; the full
// Error() is for the caller only.
func (e *InvalidCredentialError) Redacted() string {
	if e.Field == "password" {
		return fmt.Sprintf("invalid password, allowed %s", e.Pattern)
	}
	return e.Error()
}

// ProvisioningError reports a collaborator that could not be spawned,
// timed out, or exited non-zero. The key has already been restored by
// the time the caller sees this.
type ProvisioningError struct {
	ExitCode int
	Output   string
	Err      error
}

func (e *ProvisioningError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provisioning failed: %v", e.Err)
	}
	return fmt.Sprintf("provisioning failed with exit status %d", e.ExitCode)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}
