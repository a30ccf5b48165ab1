// Package rc is a client for rclone's JSON-over-HTTP remote-control API.
package rc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
)

// ServerInfo addresses one running control daemon.
type ServerInfo struct {
	// URI is the base URL advertised by the daemon's ready signal,
	// e.g. "http://127.0.0.1:5572/".
	URI string

	// Auth is the "user:pass" credential pair for HTTP basic auth.
	// Empty disables the Authorization header.
	Auth string
}

// Client issues remote-control calls against one daemon. Each call owns its
// own request; the client itself holds no per-call state.
type Client struct {
	server ServerInfo

	httpClient *http.Client // test hook, defaults to http.DefaultClient
}

// New creates a client for the given daemon.
func New(server ServerInfo) *Client {
	return &Client{server: server, httpClient: http.DefaultClient}
}

// Command is the handle for one in-flight remote-control call. It is owned
// by the caller that issued it.
type Command struct {
	cancel  context.CancelFunc
	aborted atomic.Bool

	done  chan struct{}
	value map[string]any // set before done closes
	err   error          // set before done closes
}

// Call POSTs the JSON-serialized params to the daemon's endpoint and
// returns immediately. A nil params map is sent as an empty JSON object.
// The result is observed via the returned Command.
func (c *Client) Call(ctx context.Context, endpoint string, params map[string]any) *Command {
	callCtx, cancel := context.WithCancel(ctx)
	cmd := &Command{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(cmd.done)
		cmd.value, cmd.err = c.do(callCtx, endpoint, params, cmd)
	}()
	return cmd
}

func (c *Client) do(ctx context.Context, endpoint string, params map[string]any, cmd *Command) (map[string]any, error) {
	if params == nil {
		params = map[string]any{}
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshal params: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.server.URI+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.server.Auth != "" {
		req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.server.Auth)))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, cmd.settleErr(endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cmd.settleErr(endpoint, err)
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %s: non-JSON response", ErrTransport, endpoint)
	}
	return result, nil
}

// settleErr classifies a failed call: an abort maps to ErrAborted,
// everything else to ErrTransport. The abort flag is checked so the same
// call never surfaces both kinds.
func (cmd *Command) settleErr(endpoint string, cause error) error {
	if cmd.aborted.Load() {
		return fmt.Errorf("%w: %s", ErrAborted, endpoint)
	}
	return fmt.Errorf("%w: %s: %v", ErrTransport, endpoint, cause)
}

// Abort cancels the in-flight request. It is idempotent and a no-op once
// the result has settled.
func (cmd *Command) Abort() {
	cmd.aborted.Store(true)
	cmd.cancel()
}

// Done is closed once the result has settled.
func (cmd *Command) Done() <-chan struct{} {
	return cmd.done
}

// Result blocks until the call settles and returns the decoded JSON body.
func (cmd *Command) Result() (map[string]any, error) {
	<-cmd.done
	return cmd.value, cmd.err
}
