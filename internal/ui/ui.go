// Package ui provides formatted output utilities for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color functions for consistent styling.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

// PrintInfo prints an informational message.
func PrintInfo(msg string) {
	fmt.Fprintln(Output, msg)
}

// PrintSuccess prints a success message with a green marker.
func PrintSuccess(msg string) {
	fmt.Fprintf(Output, "%s %s\n", Green("✓"), msg)
}

// PrintWarning prints a warning message in yellow.
func PrintWarning(msg string) {
	fmt.Fprintf(Output, "%s %s\n", Yellow("!"), msg)
}

// FormatEndpoint formats a serving address with blue color.
func FormatEndpoint(endpoint string) string {
	return Blue(endpoint)
}

// EngineBadge returns a colored state indicator for the supervised engine.
func EngineBadge(state string) string {
	switch state {
	case "serving":
		return Green("● Serving")
	case "starting":
		return Yellow("◐ Starting")
	case "stopped":
		return Red("○ Stopped")
	default:
		return Dim("○ Unknown")
	}
}

// PrintServing prints the running engine's details in a formatted style.
func PrintServing(addr, configFile, logPath string) {
	fmt.Fprintf(Output, "%s %s\n", Bold("Status:"), EngineBadge("serving"))
	fmt.Fprintf(Output, "%s %s\n", Bold("Address:"), FormatEndpoint(addr))
	if configFile != "" {
		fmt.Fprintf(Output, "%s %s\n", Bold("Config:"), configFile)
	}
	fmt.Fprintf(Output, "%s %s\n", Bold("Logs:"), logPath)
}
