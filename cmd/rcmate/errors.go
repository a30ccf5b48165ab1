package main

import "fmt"

// Exit codes for CLI commands.
const (
	exitSuccess        = 0
	exitError          = 1
	exitEngineMissing  = 2
	exitDaemonFailed   = 3
	exitVersionTooOld  = 4
	exitCommandFailed  = 5
	exitCommandAborted = 6
)

// ExitError represents an error that should cause the process to exit with a specific code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func errEngineMissing(cause error) *ExitError {
	return &ExitError{
		Code:    exitEngineMissing,
		Message: fmt.Sprintf("rclone not usable: %v\nHint: install rclone or set rclone.binary in settings.yaml", cause),
	}
}

func errDaemonFailed(cause error) *ExitError {
	return &ExitError{
		Code:    exitDaemonFailed,
		Message: fmt.Sprintf("daemon failed: %v", cause),
	}
}

func errVersionTooOld(have, want string) *ExitError {
	return &ExitError{
		Code:    exitVersionTooOld,
		Message: fmt.Sprintf("rclone %s is older than required %s", have, want),
	}
}

func errCommandFailed(cause error) *ExitError {
	return &ExitError{
		Code:    exitCommandFailed,
		Message: fmt.Sprintf("remote control call failed: %v", cause),
	}
}

func errCommandAborted() *ExitError {
	return &ExitError{
		Code:    exitCommandAborted,
		Message: "remote control call aborted",
	}
}
