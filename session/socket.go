package session

import (
	"context"
	"fmt"

	"github.com/coder/websocket"
)

// DialSocket opens a WebSocket to a path relative to the client's base
// URL. The handshake request goes through the client's transport chain,
// so it carries the same credential header as any other request from
// this client.
func (c *Client) DialSocket(ctx context.Context, path string) (*websocket.Conn, error) {
	conn, resp, err := websocket.Dial(ctx, c.Resolve(path), &websocket.DialOptions{
		HTTPClient: c.httpClient,
	})
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", path, err)
	}

	return conn, nil
}
