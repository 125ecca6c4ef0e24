package session

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/ventriglisse/pkg/cache"
	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
)

func TestDial(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		if c, err := ln.Accept(); err == nil {
			c.Close()
		}
	}()

	conn, err := Dial(context.Background(), ln.Addr().String(), cache.Backoff{Attempts: 1})
	require.NoError(t, err)
	conn.Close()
}

func TestDialErrors(t *testing.T) {
	t.Run("invalid address", func(t *testing.T) {
		_, err := Dial(context.Background(), "no-port", cache.DefaultBackoff)
		assert.True(t, verrors.Is(err, verrors.ErrCodeInvalidAddr))
	})

	t.Run("refused", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addr := ln.Addr().String()
		ln.Close()

		_, err = Dial(context.Background(), addr, cache.Backoff{Attempts: 2, Delay: time.Millisecond})
		assert.True(t, verrors.Is(err, verrors.ErrCodeNetwork))
		assert.Contains(t, err.Error(), "after 2 attempts")
	})
}
