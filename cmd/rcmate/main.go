package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"
)

var version = "dev"

type CLI struct {
	Version    VersionCmd    `cmd:"" help:"Show rcmate and rclone versions"`
	ConfigFile ConfigFileCmd `cmd:"" name:"config-file" help:"Show the rclone config file in use"`
	Serve      ServeCmd      `cmd:"" help:"Launch and supervise the rclone remote-control daemon"`
	RC         RCCmd         `cmd:"" name:"rc" help:"Send a raw remote-control command to a running daemon"`
	Ls         LsCmd         `cmd:"" help:"List a remote path via the running daemon"`
	Stats      StatsCmd      `cmd:"" help:"Show transfer stats from the running daemon"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func main() {
	cli := CLI{}
	parser := kong.Must(&cli,
		kong.Name("rcmate"),
		kong.Description("Supervisor and client for the rclone remote-control daemon"),
		kong.UsageOnError(),
	)
	kongplete.Complete(parser,
		kongplete.WithPredictor("endpoint", newEndpointPredictor()),
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}
