package main

import (
	"context"
	"fmt"
	"strings"

	"rcmate/internal/ui"
)

type LsCmd struct {
	ServerFlags
	Path string `arg:"" help:"Remote path to list, e.g. gdrive:backups"`
}

func (c *LsCmd) Run() error {
	fs, remote, found := strings.Cut(c.Path, ":")
	if !found {
		return fmt.Errorf("path must be <remote>:<path>, got %q", c.Path)
	}

	client, err := c.newClient()
	if err != nil {
		return err
	}

	result, err := client.ListRemote(context.Background(), fs+":", remote)
	if err != nil {
		return errCommandFailed(err)
	}

	entries, _ := result["list"].([]any)
	if len(entries) == 0 {
		ui.PrintInfo("No entries.")
		return nil
	}
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		name, _ := entry["Path"].(string)
		if isDir, _ := entry["IsDir"].(bool); isDir {
			fmt.Fprintf(ui.Output, "%s\n", ui.Blue(name+"/"))
			continue
		}
		size, _ := entry["Size"].(float64)
		fmt.Fprintf(ui.Output, "%s %s\n", name, ui.Dim(fmt.Sprintf("(%d)", int64(size))))
	}
	return nil
}
