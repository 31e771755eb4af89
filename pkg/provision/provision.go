// Package provision invokes the external account-provisioning step.
//
// The collaborator is a script or binary configured by the operator. It
// receives the login and password as its two arguments and is expected
// to create the backing account; a zero exit status means success.
package provision

import "context"

// Result captures the outcome of one provisioning attempt.
type Result struct {
	// ExitCode is the collaborator's exit status. Zero means the
	// account was created. -1 means the process could not be run at
	// all.
	ExitCode int

	// Output is the combined stdout and stderr, kept for operator
	// diagnosis.
	Output []byte
}

// Success reports whether the account was created.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Provisioner creates a backing account for a redeemed key.
type Provisioner interface {
	// Provision runs the collaborator with the given credentials. A
	// non-nil error means the process could not be spawned or was cut
	// off; a nil error with a non-zero Result.ExitCode means the
	// collaborator itself refused.
	Provision(ctx context.Context, login, password string) (Result, error)
}
