package rclone

import (
	"context"
	"fmt"
	"strings"
)

// Life-cycle markers in the daemon's log feed. The ready address is cut at a
// fixed offset defined by the exact wording of the serving sentence; if
// rclone ever rewords it this breaks, there is no more robust anchor in the
// log format.
const (
	readySourcePrefix = "rcserver/"
	readyMsgPrefix    = "Serving remote control on "
	startFailureMark  = "Failed to start remote control:"
)

// eventBuffer is the capacity of the merged event feed.
const eventBuffer = 256

// Supervisor owns one control daemon: it frames and parses both output
// streams into a single ordered event feed and raises the ready and
// start-failure signals. It never restarts the process; relaunching after a
// failure is the caller's decision.
//
// Callers that keep the daemon running should drain Events, otherwise the
// feed backs up into the daemon's pipes once the buffer fills.
type Supervisor struct {
	proc   *Process
	events chan LogMessage

	readyCh   chan struct{} // closed when the ready signal fires
	readyAddr string        // set before readyCh closes
	failedCh  chan struct{} // closed when the start-failure signal fires
	failErr   error         // set before failedCh closes

	kill func() error // test hook, defaults to proc.Kill
}

func newSupervisor(proc *Process) *Supervisor {
	s := &Supervisor{
		proc:     proc,
		events:   make(chan LogMessage, eventBuffer),
		readyCh:  make(chan struct{}),
		failedCh: make(chan struct{}),
	}
	if proc != nil {
		s.kill = proc.Kill
	}
	return s
}

// StartDaemon launches `rclone rcd` and returns a supervisor for it. The
// call returns as soon as the process has started; readiness is observed
// asynchronously via WaitReady.
//
// The daemon environment is built from three layers with documented
// precedence: the baseline from baseDaemonEnv, then overrides, then the
// forced JSON-log setting which always wins.
func (d *Driver) StartDaemon(overrides map[string]string) (*Supervisor, error) {
	bin, err := d.Binary()
	if err != nil {
		return nil, err
	}
	configFile, err := d.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	cmd := d.newCommand(bin, "rcd")
	cmd.Env = renderEnv(mergeLayers(baseDaemonEnv(configFile), overrides, forcedDaemonEnv()))

	// Each stream gets its own framer so in-stream ordering is preserved;
	// the merged feed interleaves by arrival.
	msgs := make(chan LogMessage, eventBuffer)
	stdout := NewLineFramer(func(line string) { msgs <- parseLogLine(line) })
	stderr := NewLineFramer(func(line string) { msgs <- parseLogLine(line) })
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	proc, err := startProcess(cmd)
	if err != nil {
		return nil, err
	}

	s := newSupervisor(proc)
	go func() {
		// Wait has returned once done closes, so both pipes are fully
		// copied and a trailing unterminated line can be flushed.
		<-proc.Done()
		stdout.Flush()
		stderr.Flush()
		close(msgs)
	}()
	go s.dispatch(msgs)
	return s, nil
}

// dispatch runs the per-message signal check and forwards every message to
// the event feed. It is the only goroutine touching detection state.
func (s *Supervisor) dispatch(msgs <-chan LogMessage) {
	detecting := true
	for msg := range msgs {
		if detecting {
			detecting = s.detect(msg)
		}
		s.events <- msg
	}
	close(s.events)
}

// detect evaluates the two life-cycle signals against msg. It returns false
// once either signal has fired: detection is then disabled for the rest of
// the process lifetime while the event feed keeps flowing.
func (s *Supervisor) detect(msg LogMessage) bool {
	if strings.HasPrefix(msg.Source, readySourcePrefix) && strings.HasPrefix(msg.Msg, readyMsgPrefix) {
		s.readyAddr = msg.Msg[len(readyMsgPrefix):]
		close(s.readyCh)
		return false
	}

	if strings.Contains(msg.Msg, startFailureMark) {
		s.failErr = fmt.Errorf("%w: %s", ErrDaemonStart, msg.Msg)
		// Kill immediately so a half-started daemon does not linger.
		if s.kill != nil {
			s.kill()
		}
		close(s.failedCh)
		return false
	}
	return true
}

// WaitReady blocks until the daemon reports its serving address, the
// start-failure signal fires, or ctx is done. A daemon that exits without
// emitting either signal never resolves this call; the caller's ctx is the
// only timeout applied.
func (s *Supervisor) WaitReady(ctx context.Context) (string, error) {
	select {
	case <-s.readyCh:
		return s.readyAddr, nil
	case <-s.failedCh:
		return "", s.failErr
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Events returns the merged log feed. The channel is closed once the
// process has exited and both streams are drained.
func (s *Supervisor) Events() <-chan LogMessage {
	return s.events
}

// Process returns the underlying process handle.
func (s *Supervisor) Process() *Process {
	return s.proc
}
