package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rcmate/internal/config"
	"rcmate/internal/logging"
	"rcmate/internal/rclone"
	"rcmate/internal/ui"
)

type ServeCmd struct {
	Verbose        bool          `short:"v" help:"Mirror the engine log feed to stdout"`
	StartupTimeout time.Duration `default:"30s" help:"How long to wait for the daemon to report its serving address"`
}

func (c *ServeCmd) Run() error {
	paths, err := getPaths()
	if err != nil {
		return err
	}
	if err := paths.EnsureDirectories(); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	settings, err := config.LoadSettings(paths.Settings)
	if err != nil {
		return err
	}

	logWriter := logging.NewRotatingWriter(logging.DefaultConfig(paths.DaemonLog))
	defer logWriter.Close()
	logger := logging.NewLogger(logWriter, slog.LevelInfo)

	engineWriter := logging.NewRotatingWriter(logging.DefaultConfig(paths.EngineLog))
	defer engineWriter.Close()
	engineLog := logging.NewLogger(engineWriter, slog.LevelDebug)

	driver := rclone.NewDriver(rclone.DriverConfig{
		BinaryPath: settings.Rclone.Binary,
		ConfigFile: settings.Rclone.ConfigFile,
	})
	configFile, err := driver.ConfigFilePath()
	if err != nil {
		return errEngineMissing(err)
	}

	logger.Info("starting rclone remote control daemon")
	sup, err := driver.StartDaemon(settings.Env)
	if err != nil {
		return errEngineMissing(err)
	}
	proc := sup.Process()
	logger.Info("daemon started", "pid", proc.PID())

	go c.drainEvents(sup, engineLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	readyCtx, cancel := context.WithTimeout(ctx, c.StartupTimeout)
	defer cancel()

	addr, err := sup.WaitReady(readyCtx)
	if err != nil {
		logger.Error("daemon did not become ready", "error", err)
		proc.Kill()
		return errDaemonFailed(err)
	}
	logger.Info("daemon ready", "address", addr)
	ui.PrintServing(addr, configFile, paths.EngineLog)

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		if err := proc.Stop(context.Background()); err != nil {
			logger.Warn("stop daemon", "error", err)
			ui.PrintWarning(fmt.Sprintf("stop daemon: %v", err))
		}
		<-proc.Done()
		return nil
	case <-proc.Done():
		err := proc.ExitErr()
		logger.Error("daemon exited", "error", err)
		return errDaemonFailed(fmt.Errorf("daemon exited unexpectedly: %v", err))
	}
}

// drainEvents mirrors the merged log feed into the engine log file (and to
// stdout with --verbose). The feed must be drained for as long as the
// process lives or its pipes back up.
func (c *ServeCmd) drainEvents(sup *rclone.Supervisor, engineLog *slog.Logger) {
	for msg := range sup.Events() {
		logFn := engineLog.Info
		switch msg.Level {
		case rclone.LevelError:
			logFn = engineLog.Error
		case rclone.LevelWarning:
			logFn = engineLog.Warn
		case rclone.LevelDebug:
			logFn = engineLog.Debug
		}
		logFn(msg.Msg, "source", msg.Source, "engine_time", msg.Time)

		if c.Verbose {
			fmt.Fprintf(ui.Output, "%s %s %s\n", ui.Dim(msg.Time), msg.Level, msg.Msg)
		}
	}
}
