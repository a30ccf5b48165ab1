package rclone

import (
	"context"
	"fmt"
	"os/exec"
	"syscall"
	"time"
)

// StopTimeout is the time a graceful Stop waits before force-killing.
const StopTimeout = 10 * time.Second

// Process is a handle on a running daemon process. It owns lifecycle only;
// the log feed and life-cycle signals live on the Supervisor.
type Process struct {
	cmd     *exec.Cmd
	done    chan struct{}
	exitErr error // written by the wait goroutine before done is closed
}

// startProcess starts cmd and begins reaping it in the background.
func startProcess(cmd *exec.Cmd) (*Process, error) {
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", cmd.Path, err)
	}

	p := &Process{cmd: cmd, done: make(chan struct{})}
	go func() {
		p.exitErr = cmd.Wait()
		close(p.done)
	}()
	return p, nil
}

// PID returns the OS process ID.
func (p *Process) PID() int {
	return p.cmd.Process.Pid
}

// Done is closed once the process has exited and been reaped.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// ExitErr returns the process exit error. Only valid after Done is closed.
func (p *Process) ExitErr() error {
	return p.exitErr
}

// Kill force-kills the process. Killing an already-exited process is a no-op.
func (p *Process) Kill() error {
	select {
	case <-p.done:
		return nil
	default:
	}
	if err := p.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("kill rclone daemon: %w", err)
	}
	return nil
}

// Stop asks the process to terminate, escalating to a forced kill after
// StopTimeout or when ctx is cancelled.
func (p *Process) Stop(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	default:
	}

	if err := p.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		// Already gone, or signalling is unsupported; fall back to Kill.
		return p.Kill()
	}

	select {
	case <-p.done:
		return nil
	case <-time.After(StopTimeout):
		return p.Kill()
	case <-ctx.Done():
		p.Kill()
		return ctx.Err()
	}
}
