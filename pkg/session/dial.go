package session

import (
	"context"
	"net"

	"github.com/matzehuels/ventriglisse/pkg/cache"
	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
	"github.com/matzehuels/ventriglisse/pkg/observability"
)

// Dial connects to a game server, retrying with b.
func Dial(ctx context.Context, addr string, b cache.Backoff) (net.Conn, error) {
	if err := verrors.ValidateAddr(addr); err != nil {
		return nil, err
	}

	var d net.Dialer
	var conn net.Conn
	attempt := 0
	err := cache.RetryWith(ctx, b, func() error {
		attempt++
		c, err := d.DialContext(ctx, "tcp", addr)
		observability.Session().OnDial(ctx, addr, attempt, err)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			return cache.Retryable(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, verrors.Wrap(verrors.ErrCodeNetwork, err, "dial %s after %d attempts", addr, attempt)
	}
	return conn, nil
}
