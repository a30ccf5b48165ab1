package rclone

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

var (
	fakeProcPath string
	buildOnce    sync.Once
	buildErr     error
)

// buildFakeProc builds the fake daemon binary once per test run.
func buildFakeProc(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "rclone-test-*")
		if err != nil {
			buildErr = err
			return
		}

		fakeProcPath = filepath.Join(tmpDir, "fakeproc")
		cmd := exec.Command("go", "build", "-o", fakeProcPath, "./testdata/fakeproc")
		wd, _ := os.Getwd()
		cmd.Dir = wd
		cmd.Env = append(os.Environ(), "CGO_ENABLED=0")

		out, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = &exec.ExitError{Stderr: out}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build fakeproc: %v", buildErr)
	}
	return fakeProcPath
}

// newFakeDriver returns a driver whose daemon launch spawns fakeproc in the
// given mode. The explicit config file keeps StartDaemon from probing.
func newFakeDriver(t *testing.T, mode string) *Driver {
	t.Helper()
	bin := buildFakeProc(t)

	d := NewDriver(DriverConfig{ConfigFile: "/dev/null"})
	d.newCommand = func(string, ...string) *exec.Cmd {
		return exec.Command(bin, "-mode="+mode)
	}
	return d
}

func TestStartDaemonReady(t *testing.T) {
	d := newFakeDriver(t, "ready")

	sup, err := d.StartDaemon(nil)
	if err != nil {
		t.Fatalf("StartDaemon() error = %v", err)
	}
	defer sup.Process().Kill()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	addr, err := sup.WaitReady(ctx)
	if err != nil {
		t.Fatalf("WaitReady() error = %v", err)
	}
	if addr != "http://127.0.0.1:5572/" {
		t.Errorf("WaitReady() = %q", addr)
	}
}

func TestStartDaemonFailureKills(t *testing.T) {
	d := newFakeDriver(t, "fail")

	sup, err := d.StartDaemon(nil)
	if err != nil {
		t.Fatalf("StartDaemon() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = sup.WaitReady(ctx)
	if !errors.Is(err, ErrDaemonStart) {
		t.Fatalf("WaitReady() error = %v, want ErrDaemonStart", err)
	}

	// The supervisor force-kills on this path even though the fake
	// daemon would have kept running.
	select {
	case <-sup.Process().Done():
	case <-time.After(5 * time.Second):
		t.Fatal("process still alive after start failure")
	}
}

func TestStartDaemonGarbageFeed(t *testing.T) {
	d := newFakeDriver(t, "garbage")

	sup, err := d.StartDaemon(nil)
	if err != nil {
		t.Fatalf("StartDaemon() error = %v", err)
	}

	var got []LogMessage
	for msg := range sup.Events() {
		got = append(got, msg)
	}

	if len(got) != 2 {
		t.Fatalf("got %d events, want 2 (one per line, trailing line flushed)", len(got))
	}
	if got[0].Level != LevelError || got[0].Msg != "panic: something bad" {
		t.Errorf("first event = %+v, want synthetic error message", got[0])
	}
	if got[1].Msg != "tail without newline" {
		t.Errorf("second event = %+v, want flushed trailing line", got[1])
	}
}

func TestStartDaemonEnvOverrides(t *testing.T) {
	d := newFakeDriver(t, "garbage")

	sup, err := d.StartDaemon(map[string]string{"RCLONE_LOG_LEVEL": "DEBUG"})
	if err != nil {
		t.Fatalf("StartDaemon() error = %v", err)
	}
	env := sup.Process().cmd.Env

	var level, jsonLog string
	for _, kv := range env {
		switch {
		case kv == "RCLONE_LOG_LEVEL=DEBUG":
			level = kv
		case kv == "RCLONE_USE_JSON_LOG=true":
			jsonLog = kv
		}
	}
	if level == "" {
		t.Error("caller override RCLONE_LOG_LEVEL=DEBUG not applied")
	}
	if jsonLog == "" {
		t.Error("forced RCLONE_USE_JSON_LOG=true missing")
	}

	for range sup.Events() {
	}
}
