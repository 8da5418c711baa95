// Package contestio provides the two thin adapters contest programs need at
// their boundary: a whitespace-delimited token reader and a chainable
// buffered writer.
//
// Reader pulls bytes through a bufio.Reader and cuts them into tokens on
// space, tab, carriage return, or newline, with typed numeric parsing on
// top. Clean end-of-input surfaces as io.EOF from the call that ran out of
// tokens; a token that fails numeric parsing reports ErrMalformedToken —
// malformed input is a data error, not a recoverable condition.
//
// Writer buffers everything written through it and returns itself from
// every print call so writes chain:
//
//	out := contestio.NewWriter(os.Stdout)
//	defer out.Flush()
//	out.Print(x).Print(" ").Println(y)
//
// Write errors stick inside the underlying bufio.Writer and surface from
// Flush; there is no flush-on-scope-exit in Go, so defer the Flush yourself.
package contestio
