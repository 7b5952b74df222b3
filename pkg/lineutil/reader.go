package lineutil

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineReader provides a helper to prompt for and read line-oriented input
type LineReader struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

// NewLineReader returns a LineReader reading from in and writing prompts to out
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine reads a single line without its trailing line terminator.
// It returns io.EOF only when the stream is exhausted with no pending data.
func (r *LineReader) ReadLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimEOL(line), nil // last line without terminator
		}
		if err == io.EOF {
			return "", io.EOF
		}
		return "", fmt.Errorf("reading input line: %w", err)
	}

	return trimEOL(line), nil
}

// Prompt writes text without a newline, then reads the answer line
func (r *LineReader) Prompt(text string) (string, error) {
	if _, err := io.WriteString(r.out, text); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	return r.ReadLine()
}

// Close releases the underlying input stream if it can be closed
func (r *LineReader) Close() error {
	if c, ok := r.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
