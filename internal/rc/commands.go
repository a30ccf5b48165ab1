package rc

import "context"

// Well-known remote-control endpoints.
const (
	EndpointNoop       = "rc/noop"
	EndpointCoreQuit   = "core/quit"
	EndpointCoreStats  = "core/stats"
	EndpointCoreVer    = "core/version"
	EndpointListRemote = "operations/list"
)

// Noop sends a no-op request, useful as a liveness check.
func (c *Client) Noop(ctx context.Context) (map[string]any, error) {
	return c.Call(ctx, EndpointNoop, nil).Result()
}

// CoreVersion returns the daemon's version info.
func (c *Client) CoreVersion(ctx context.Context) (map[string]any, error) {
	return c.Call(ctx, EndpointCoreVer, nil).Result()
}

// CoreStats returns the daemon's global transfer stats.
func (c *Client) CoreStats(ctx context.Context) (map[string]any, error) {
	return c.Call(ctx, EndpointCoreStats, nil).Result()
}

// CoreQuit asks the daemon to exit.
func (c *Client) CoreQuit(ctx context.Context) (map[string]any, error) {
	return c.Call(ctx, EndpointCoreQuit, nil).Result()
}

// ListRemote lists the entries of remote path on the named filesystem.
func (c *Client) ListRemote(ctx context.Context, fs, remote string) (map[string]any, error) {
	return c.Call(ctx, EndpointListRemote, map[string]any{
		"fs":     fs,
		"remote": remote,
	}).Result()
}
