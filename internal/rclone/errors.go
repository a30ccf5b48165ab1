package rclone

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds surfaced by the driver. Callers match
// them with errors.Is.
var (
	// ErrPathNotFound indicates an explicitly configured binary path does
	// not exist on disk.
	ErrPathNotFound = errors.New("rclone binary path not found")

	// ErrVersionDetection indicates the binary produced no parseable
	// version output.
	ErrVersionDetection = errors.New("cannot detect rclone version")

	// ErrConfigFileDetection indicates the binary produced no parseable
	// config file path.
	ErrConfigFileDetection = errors.New("cannot detect rclone config file")

	// ErrDaemonStart indicates the control daemon reported a startup
	// failure on its log stream.
	ErrDaemonStart = errors.New("rclone remote control daemon failed to start")
)

// ProbeOp identifies a one-shot probe invocation of the rclone binary.
type ProbeOp string

const (
	ProbeOpVersion    ProbeOp = "version"
	ProbeOpConfigFile ProbeOp = "config file"
)

// ProbeError indicates a synchronous probe of the rclone binary failed.
type ProbeError struct {
	Op  ProbeOp
	Err error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("rclone %s: %v", e.Op, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}
