package contestio

import (
	"bufio"
	"fmt"
	"io"
)

// Writer buffers textual output and chains: every print method returns the
// Writer so consecutive writes read as one expression. Errors stick inside
// the underlying bufio.Writer and come back from Flush. Not safe for
// concurrent use.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, defaultBufSize)}
}

// Print appends the default textual form of each argument.
func (w *Writer) Print(args ...any) *Writer {
	_, _ = fmt.Fprint(w.bw, args...)

	return w
}

// Println appends the arguments separated by spaces, then a newline.
func (w *Writer) Println(args ...any) *Writer {
	_, _ = fmt.Fprintln(w.bw, args...)

	return w
}

// Printf appends a formatted string.
func (w *Writer) Printf(format string, args ...any) *Writer {
	_, _ = fmt.Fprintf(w.bw, format, args...)

	return w
}

// Flush pushes all buffered output to the destination and returns the first
// error encountered by any prior write. Defer it right after NewWriter:
// buffered output is only guaranteed visible once Flush returns.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
