package session

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"image/png"
	"io"
	"net"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/ventriglisse/pkg/cache"
	"github.com/matzehuels/ventriglisse/pkg/diagnostics"
	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
	"github.com/matzehuels/ventriglisse/pkg/maze"
	"github.com/matzehuels/ventriglisse/pkg/pipeline"
)

const (
	lCorridor = "TLRS . .\nLR . .\nLB TB TBRE\n"
	noEnd     = "TLRS . .\nLR . .\nLB TB TBR\n"
)

func mazePNG(t *testing.T, text string) []byte {
	t.Helper()
	g, err := maze.ParseGrid(strings.NewReader(text))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, maze.Render(g, maze.DefaultLayout)))
	return buf.Bytes()
}

func newRunner() *pipeline.Runner {
	return pipeline.NewRunner(cache.NewNullCache(), nil, log.New(io.Discard))
}

// fakeServer plays the server side of the protocol over conn and returns
// the answers it received.
func fakeServer(t *testing.T, conn net.Conn, mazes [][]byte, final string) <-chan []string {
	t.Helper()
	out := make(chan []string, 1)
	go func() {
		defer conn.Close()
		r := bufio.NewReader(conn)
		var answers []string
		defer func() { out <- answers }()

		if _, err := io.WriteString(conn, "Welcome to the rink\n"+ReadyBanner+"\n"); err != nil {
			return
		}
		if _, err := r.ReadString('\n'); err != nil {
			return
		}
		for _, m := range mazes {
			if _, err := io.WriteString(conn, EncodeFrame(m, 76)); err != nil {
				return
			}
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			answers = append(answers, strings.TrimSuffix(line, "\n"))
		}
		io.WriteString(conn, final+"\n")
	}()
	return out
}

func TestDecodeFrame(t *testing.T) {
	image := []byte("not really a png, but bytes all the same")

	t.Run("round trip", func(t *testing.T) {
		got, err := DecodeFrame("banner\n" + EncodeFrame(image, 8))
		assert.NoError(t, err)
		assert.Equal(t, image, got)
	})

	t.Run("crlf", func(t *testing.T) {
		frame := strings.ReplaceAll(EncodeFrame(image, 16), "\n", "\r\n")
		got, err := DecodeFrame(frame)
		assert.NoError(t, err)
		assert.Equal(t, image, got)
	})

	t.Run("missing begin", func(t *testing.T) {
		_, err := DecodeFrame("aGVsbG8=\n" + EndMarker)
		assert.True(t, verrors.Is(err, verrors.ErrCodeProtocol))
	})

	t.Run("bad base64", func(t *testing.T) {
		_, err := DecodeFrame(BeginMarker + "\n!!!!\n" + EndMarker)
		assert.True(t, verrors.Is(err, verrors.ErrCodeProtocol))
	})
}

func TestConnReadMazeEndOfStream(t *testing.T) {
	var rw struct {
		io.Reader
		io.Writer
	}
	rw.Reader = strings.NewReader(EncodeFrame([]byte{1, 2, 3}, 4) + "\nWell done: flag{slippery}\n")
	rw.Writer = io.Discard
	c := NewConn(rw)

	data, err := c.ReadMaze()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)

	_, err = c.ReadMaze()
	var eos *EndOfStream
	require.True(t, errors.As(err, &eos), "err = %v", err)
	assert.Equal(t, "Well done: flag{slippery}", eos.Final)
}

func TestWaitReady(t *testing.T) {
	t.Run("answers with empty line", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConn(struct {
			io.Reader
			io.Writer
		}{strings.NewReader("hello\nready..."), &out})

		greeting, err := c.WaitReady()
		assert.NoError(t, err)
		assert.Equal(t, "hello\nready...", greeting)
		assert.Equal(t, "\n", out.String())
	})

	t.Run("stream ends first", func(t *testing.T) {
		c := NewConn(struct {
			io.Reader
			io.Writer
		}{strings.NewReader("hello\n"), io.Discard})

		_, err := c.WaitReady()
		assert.True(t, verrors.Is(err, verrors.ErrCodeProtocol))
	})
}

func TestSessionRun(t *testing.T) {
	client, server := net.Pipe()
	answers := fakeServer(t, server, [][]byte{mazePNG(t, lCorridor), mazePNG(t, lCorridor)}, "flag{ventriglisse}")

	s := New(client, newRunner(), Options{Logger: log.New(io.Discard), IOTimeout: 5 * time.Second})
	sum, err := s.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"NSEN", "NSEN"}, <-answers)
	assert.Equal(t, 2, sum.Solved)
	assert.Len(t, sum.Answers, 2)
	assert.Equal(t, "flag{ventriglisse}", sum.Final)
	assert.Equal(t, s.ID, sum.SessionID)
}

func TestSessionMaxMazes(t *testing.T) {
	client, server := net.Pipe()
	fakeServer(t, server, [][]byte{mazePNG(t, lCorridor), mazePNG(t, lCorridor)}, "bye")

	s := New(client, newRunner(), Options{Logger: log.New(io.Discard), MaxMazes: 1})
	sum, err := s.Run(context.Background())
	client.Close()

	assert.NoError(t, err)
	assert.Equal(t, 1, sum.Solved)
	assert.Empty(t, sum.Final)
}

func TestSessionFailureSavesArtifact(t *testing.T) {
	dir := t.TempDir()
	store, err := diagnostics.NewFileStore(dir)
	require.NoError(t, err)

	client, server := net.Pipe()
	fakeServer(t, server, [][]byte{mazePNG(t, lCorridor), mazePNG(t, noEnd)}, "unused")

	s := New(client, newRunner(), Options{Logger: log.New(io.Discard), Diagnostics: store})
	sum, err := s.Run(context.Background())
	client.Close()

	var pnf *verrors.PathNotFoundError
	require.True(t, errors.As(err, &pnf), "err = %v", err)
	assert.Equal(t, 1, sum.Solved)
	require.NotEmpty(t, sum.Artifact)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // json + png
}

func TestSessionCancel(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()
	// The server greets but never sends a maze.
	go func() {
		io.WriteString(server, ReadyBanner)
		bufio.NewReader(server).ReadString('\n')
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	s := New(client, newRunner(), Options{Logger: log.New(io.Discard)})
	_, err := s.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSessionIOTimeout(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()
	go func() {
		io.WriteString(server, ReadyBanner)
		bufio.NewReader(server).ReadString('\n')
	}()

	s := New(client, newRunner(), Options{Logger: log.New(io.Discard), IOTimeout: 50 * time.Millisecond})
	_, err := s.Run(context.Background())
	client.Close()

	assert.True(t, verrors.Is(err, verrors.ErrCodeTimeout), "err = %v", err)
}
