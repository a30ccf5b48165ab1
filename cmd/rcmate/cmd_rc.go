package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"rcmate/internal/rc"
)

type RCCmd struct {
	ServerFlags
	Endpoint string `arg:"" help:"Remote control endpoint, e.g. core/stats" predictor:"endpoint"`
	Params   string `arg:"" optional:"" help:"JSON object with request parameters"`
}

func (c *RCCmd) Run() error {
	var params map[string]any
	if c.Params != "" {
		if err := json.Unmarshal([]byte(c.Params), &params); err != nil {
			return fmt.Errorf("parse params: %w", err)
		}
	}

	client, err := c.newClient()
	if err != nil {
		return err
	}

	// Ctrl-C aborts the in-flight call rather than killing the process
	// outright.
	cmd := client.Call(context.Background(), c.Endpoint, params)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cmd.Abort()
		case <-cmd.Done():
		}
	}()

	result, err := cmd.Result()
	if err != nil {
		if errors.Is(err, rc.ErrAborted) {
			return errCommandAborted()
		}
		return errCommandFailed(err)
	}
	return printJSON(result)
}
