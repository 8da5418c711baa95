package contestio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformedToken indicates a token that could not be parsed as the
// requested numeric type.
var ErrMalformedToken = errors.New("contestio: malformed token")

// defaultBufSize is the Reader's buffer size unless overridden; contest
// inputs are line-heavy, so a larger-than-bufio-default buffer pays off.
const defaultBufSize = 1 << 16

// ReaderOption configures a Reader at construction.
type ReaderOption func(*readerConfig)

type readerConfig struct {
	bufSize int
}

// WithBufferSize sets the underlying buffer size in bytes. Sizes below
// bufio's minimum are rounded up by bufio itself.
func WithBufferSize(n int) ReaderOption {
	return func(c *readerConfig) {
		if n > 0 {
			c.bufSize = n
		}
	}
}

// Reader cuts a byte stream into whitespace-delimited tokens and parses
// them into numeric or string values. Not safe for concurrent use.
type Reader struct {
	br *bufio.Reader
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	cfg := readerConfig{bufSize: defaultBufSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Reader{br: bufio.NewReaderSize(r, cfg.bufSize)}
}

// isSpace reports whether b delimits tokens.
func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

// Token returns the next whitespace-delimited token. Running out of input
// before any token byte is found returns io.EOF; input ending mid-token
// terminates the token cleanly.
func (r *Reader) Token() (string, error) {
	var b byte
	var err error

	for {
		b, err = r.br.ReadByte()
		if err != nil {
			return "", err
		}
		if !isSpace(b) {
			break
		}
	}

	tok := make([]byte, 0, 16)
	for {
		tok = append(tok, b)

		b, err = r.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return "", err
		}
		if isSpace(b) {
			break
		}
	}

	return string(tok), nil
}

// String is Token under the name callers reaching for typed reads expect.
func (r *Reader) String() (string, error) {
	return r.Token()
}

// Int reads the next token as an int.
func (r *Reader) Int() (int, error) {
	n, err := r.Int64()

	return int(n), err
}

// Int64 reads the next token as an int64. A token that is not a valid
// signed decimal reports ErrMalformedToken.
func (r *Reader) Int64() (int64, error) {
	tok, err := r.Token()
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("contestio: %q as int64: %w", tok, ErrMalformedToken)
	}

	return n, nil
}

// Uint64 reads the next token as a uint64.
func (r *Reader) Uint64() (uint64, error) {
	tok, err := r.Token()
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("contestio: %q as uint64: %w", tok, ErrMalformedToken)
	}

	return n, nil
}

// Float64 reads the next token as a float64.
func (r *Reader) Float64() (float64, error) {
	tok, err := r.Token()
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("contestio: %q as float64: %w", tok, ErrMalformedToken)
	}

	return f, nil
}
