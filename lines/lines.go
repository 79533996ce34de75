/*
Package lines reads text files line by line and counts the lines carrying content,
i.e. lines which are not comments.

A comment line is a line whose first non-whitespace character is '#'. Blank lines
are not comments and are counted.
*/
package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
)

// ErrFileNotFound is returned if a file to read does not exist.
var ErrFileNotFound = errors.New("file not found")

// tracer traces with key 'exercises.lines'.
func tracer() tracing.Trace {
	return tracing.Select("exercises.lines")
}

// MeaningfulLineCount counts the non-comment lines of the file at path.
// If path does not exist, the error returned wraps ErrFileNotFound.
func MeaningfulLineCount(path string) (int, error) {
	r, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	return count(r)
}

// Count counts the non-comment lines read from r.
func Count(r io.Reader) (int, error) {
	return count(NewReader(r))
}

func count(r *Reader) (int, error) {
	n := 0
	for r.Next() {
		if !IsComment(r.Line()) {
			n++
		}
	}
	if err := r.Err(); err != nil {
		return 0, err
	}
	tracer().Debugf("counted %d lines", n)
	return n, nil
}

// IsComment is true for a line whose first non-whitespace character is '#'.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, isWhitespace), "#")
}

// isWhitespace follows the classic Java definition: Unicode space, line and
// paragraph separators except the non-breaking ones, plus the ASCII controls
// \t \n \v \f \r and the separators U+001C…U+001F. U+0085 and U+00A0 are
// not whitespace.
func isWhitespace(r rune) bool {
	switch r {
	case '\u00a0', '\u2007', '\u202f':
		return false
	case '\t', '\n', '\v', '\f', '\r', '\u001c', '\u001d', '\u001e', '\u001f':
		return true
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}

// --- Reader ----------------------------------------------------------------

// Reader is a lazy sequence of the lines of a text. Use it like this:
//
//     r, err := lines.Open("config.txt")
//     …
//     defer r.Close()
//     for r.Next() {
//         fmt.Println(r.Line())
//     }
//     if r.Err() != nil { … }
//
type Reader struct {
	input  *bufio.Reader
	closer io.Closer
	line   string
	eof    bool
	err    error
}

// Open opens the file at path for reading lines. If path does not exist,
// the error returned wraps ErrFileNotFound.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("lines: %w", err)
	}
	tracer().Debugf("opened %s", path)
	r := NewReader(f)
	r.closer = f
	return r, nil
}

// NewReader creates a line reader for an io.Reader. Lines are split at "\n",
// a trailing "\r" is dropped. Lines may be of any length.
func NewReader(r io.Reader) *Reader {
	return &Reader{input: bufio.NewReader(r)}
}

// Next advances to the next line. It returns false at the end of input or on
// a read error.
func (r *Reader) Next() bool {
	r.line = ""
	if r.eof || r.err != nil {
		return false
	}
	line, err := r.input.ReadString('\n')
	if err == io.EOF {
		r.eof = true
		if line == "" { // no unterminated last line
			return false
		}
	} else if err != nil {
		r.err = err
		return false
	}
	line = strings.TrimSuffix(line, "\n")
	r.line = strings.TrimSuffix(line, "\r")
	return true
}

// Line returns the current line, without its line terminator.
func (r *Reader) Line() string {
	return r.line
}

// Err returns the first read error, if any.
func (r *Reader) Err() error {
	if r.err != nil {
		return fmt.Errorf("lines: %w", r.err)
	}
	return nil
}

// Close releases the underlying file, if the Reader has been created by Open.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}
