package session

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"net"
	"strings"

	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
)

// Protocol markers.
const (
	ReadyBanner = "ready..."
	BeginMarker = "BEGIN MAZE"
	EndMarker   = "END MAZE"
)

// EndOfStream is returned by ReadMaze when the server closes the stream
// instead of sending a maze. Final holds whatever it wrote last.
type EndOfStream struct {
	Final string
}

func (e *EndOfStream) Error() string { return "server closed the stream" }

// Conn frames the maze protocol over a byte stream.
type Conn struct {
	r *bufio.Reader
	w io.Writer
}

// NewConn wraps rw.
func NewConn(rw io.ReadWriter) *Conn {
	return &Conn{r: bufio.NewReader(rw), w: rw}
}

// readUntil reads until delim has been read and returns everything read,
// delim included. At end of stream it returns what it has with io.EOF.
func (c *Conn) readUntil(delim string) (string, error) {
	var buf bytes.Buffer
	last := delim[len(delim)-1]
	for {
		chunk, err := c.r.ReadSlice(last)
		buf.Write(chunk)
		switch {
		case err == nil:
			if bytes.HasSuffix(buf.Bytes(), []byte(delim)) {
				return buf.String(), nil
			}
		case errors.Is(err, bufio.ErrBufferFull):
		default:
			return buf.String(), err
		}
	}
}

// WaitReady consumes the greeting up to the ready banner and answers it.
func (c *Conn) WaitReady() (string, error) {
	greeting, err := c.readUntil(ReadyBanner)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return greeting, verrors.New(verrors.ErrCodeProtocol, "stream ended before %q", ReadyBanner)
		}
		return greeting, ioError(err, "read greeting")
	}
	return greeting, c.SendLine("")
}

// ReadMaze reads the next maze and returns the decoded PNG bytes.
func (c *Conn) ReadMaze() ([]byte, error) {
	raw, err := c.readUntil(EndMarker)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &EndOfStream{Final: strings.TrimSpace(raw)}
		}
		return nil, ioError(err, "read maze")
	}
	return DecodeFrame(raw)
}

// DecodeFrame extracts the image from a frame ending in EndMarker. The
// payload is every line strictly between the BEGIN MAZE line and the line
// holding END MAZE.
func DecodeFrame(frame string) ([]byte, error) {
	_, body, ok := strings.Cut(frame, BeginMarker)
	if !ok {
		return nil, verrors.New(verrors.ErrCodeProtocol, "frame has no %q marker", BeginMarker)
	}
	lines := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return nil, verrors.New(verrors.ErrCodeProtocol, "empty maze frame")
	}

	var payload strings.Builder
	for _, line := range lines[1 : len(lines)-1] {
		payload.WriteString(strings.TrimSpace(line))
	}
	data, err := base64.StdEncoding.DecodeString(payload.String())
	if err != nil {
		return nil, verrors.Wrap(verrors.ErrCodeProtocol, err, "maze payload is not base64")
	}
	return data, nil
}

// EncodeFrame is the inverse of DecodeFrame, wrapping lines at width
// characters. Servers and tests use it.
func EncodeFrame(image []byte, width int) string {
	enc := base64.StdEncoding.EncodeToString(image)
	var b strings.Builder
	b.WriteString(BeginMarker + "\n")
	for len(enc) > 0 {
		n := min(width, len(enc))
		b.WriteString(enc[:n] + "\n")
		enc = enc[n:]
	}
	b.WriteString(EndMarker + "\n")
	return b.String()
}

// SendLine writes s followed by a newline.
func (c *Conn) SendLine(s string) error {
	if _, err := io.WriteString(c.w, s+"\n"); err != nil {
		return ioError(err, "send")
	}
	return nil
}

// ioError codes a transport failure, telling deadlines apart.
func ioError(err error, op string) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return verrors.Wrap(verrors.ErrCodeTimeout, err, "%s", op)
	}
	return verrors.Wrap(verrors.ErrCodeNetwork, err, "%s", op)
}
