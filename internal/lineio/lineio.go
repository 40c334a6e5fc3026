// Package lineio reads the input stream one line at a time with no cap on
// line length, so an oversized line reaches the parser as an ordinary
// malformed token instead of killing the stream.
package lineio

import (
	"bufio"
	"io"
	"strings"
)

// Source is the shared cursor over the process input stream. The console
// pause and the prompt reader advance the same Source.
type Source struct {
	r *bufio.Reader
}

// New returns a line source over r.
func New(r io.Reader) *Source {
	return &Source{r: bufio.NewReader(r)}
}

// Next returns the next input line without its terminator. A final line
// with no terminator is still returned; after that, and on an empty
// stream, Next returns io.EOF.
func (s *Source) Next() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
