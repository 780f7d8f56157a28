package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// openInput returns the named file, or stdin when args is empty or "-".
func openInput(stdin io.Reader, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	return f, nil
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// scanValues is a bufio.SplitFunc returning tokens delimited by commas or
// whitespace.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		if !atEOF && !utf8.FullRune(data[start:]) {
			return start, nil, nil
		}
		r, width := utf8.DecodeRune(data[start:])
		if !isSeparator(r) {
			break
		}
		start += width
	}
	for i := start; i < len(data); {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return start, nil, nil
		}
		r, width := utf8.DecodeRune(data[i:])
		if isSeparator(r) {
			return i + width, data[start:i], nil
		}
		i += width
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// readValues parses unsigned 32-bit integers separated by whitespace or
// commas.
func readValues(in io.Reader) ([]uint32, error) {
	scanner := bufio.NewScanner(in)
	scanner.Split(scanValues)

	var values []uint32
	position := 0
	for scanner.Scan() {
		position++
		field := scanner.Text()
		v, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d: %q is not an unsigned 32-bit integer", position, field)
		}
		values = append(values, uint32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return values, nil
}

func loadValues(stdin io.Reader, args []string) ([]uint32, error) {
	in, err := openInput(stdin, args)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return readValues(in)
}
