package main

import (
	"encoding/json"
	"fmt"

	"rcmate/internal/config"
	"rcmate/internal/rc"
	"rcmate/internal/rclone"
	"rcmate/internal/ui"
)

func getPaths() (*config.Paths, error) {
	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("get paths: %w", err)
	}
	return paths, nil
}

func loadSettings() (*config.Settings, error) {
	paths, err := getPaths()
	if err != nil {
		return nil, err
	}
	return config.LoadSettings(paths.Settings)
}

func newDriver() (*rclone.Driver, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}
	return rclone.NewDriver(rclone.DriverConfig{
		BinaryPath: settings.Rclone.Binary,
		ConfigFile: settings.Rclone.ConfigFile,
	}), nil
}

// ServerFlags are the per-command flags addressing a running daemon. Flag
// values win over settings.yaml.
type ServerFlags struct {
	URL  string `help:"Remote control base URL" placeholder:"http://127.0.0.1:5572/"`
	User string `help:"Basic auth user"`
	Pass string `help:"Basic auth password"`
}

func (f *ServerFlags) newClient() (*rc.Client, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	info := rc.ServerInfo{URI: settings.RCAddr(), Auth: settings.RCAuth()}
	if f.URL != "" {
		info.URI = f.URL
	}
	if f.User != "" {
		info.Auth = f.User + ":" + f.Pass
	}
	return rc.New(info), nil
}

// printJSON pretty-prints a decoded rc reply.
func printJSON(v map[string]any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode reply: %w", err)
	}
	fmt.Fprintln(ui.Output, string(data))
	return nil
}
