package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"rcmate/internal/pathutil"
)

// Settings is the user-editable settings file (settings.yaml).
type Settings struct {
	Rclone struct {
		// Binary is an explicit path to the rclone executable or a
		// directory containing it. Supports ~ expansion.
		Binary string `yaml:"binary,omitempty"`
		// ConfigFile overrides rclone's own config file location.
		ConfigFile string `yaml:"config_file,omitempty"`
	} `yaml:"rclone"`

	RC struct {
		// Addr is the remote-control base URL of a running daemon.
		Addr string `yaml:"addr,omitempty"`
		User string `yaml:"user,omitempty"`
		Pass string `yaml:"pass,omitempty"`
	} `yaml:"rc"`

	// Env is layered over the daemon's baseline environment at launch.
	Env map[string]string `yaml:"env,omitempty"`
}

// DefaultRCAddr is used when neither settings nor flags name a daemon.
const DefaultRCAddr = "http://127.0.0.1:5572/"

// LoadSettings reads the settings file. A missing file yields zero settings
// and no error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	// Strict decoding: a typo in settings.yaml should fail loudly, not
	// silently fall back to defaults.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	if s.Rclone.Binary != "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("expand binary path: %w", err)
		}
		resolved, err := pathutil.ResolvePath(s.Rclone.Binary, home)
		if err != nil {
			return nil, fmt.Errorf("resolve binary path: %w", err)
		}
		s.Rclone.Binary = resolved
	}
	return &s, nil
}

// RCAddr returns the configured daemon address or the default.
func (s *Settings) RCAddr() string {
	if s.RC.Addr != "" {
		return s.RC.Addr
	}
	return DefaultRCAddr
}

// RCAuth returns the "user:pass" credential pair, or empty when no user is
// configured.
func (s *Settings) RCAuth() string {
	if s.RC.User == "" {
		return ""
	}
	return s.RC.User + ":" + s.RC.Pass
}
