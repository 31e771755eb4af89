package provision

import (
	"context"
	"errors"
	"os/exec"
	"time"
)

// DefaultTimeout bounds a provisioning run when the configuration does
// not say otherwise. A hung collaborator must not pin a request
// forever.
const DefaultTimeout = 30 * time.Second

// ScriptProvisioner runs a configured script with the login and
// password as arguments.
type ScriptProvisioner struct {
	// Path is the script or binary to run.
	Path string

	// Timeout bounds each run; zero means DefaultTimeout.
	Timeout time.Duration
}

// Provision implements Provisioner.
func (p *ScriptProvisioner) Provision(ctx context.Context, login, password string) (Result, error) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.Path, login, password)
	// Don't wait on output pipes held open by orphaned children after
	// the script itself is killed.
	cmd.WaitDelay = time.Second
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return Result{ExitCode: exitErr.ExitCode(), Output: output}, nil
		}
		return Result{ExitCode: -1, Output: output}, err
	}

	return Result{ExitCode: 0, Output: output}, nil
}
