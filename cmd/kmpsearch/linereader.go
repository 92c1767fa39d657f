package main

import (
	"bufio"
	"bytes"
	"io"
)

// maxDiscard bounds how far past the cap the rest of an overlong line is
// drained; a stream that never produces a newline must not block forever.
const maxDiscard = 1 << 20

// readLine reads one line of at most max bytes from r, stripping the trailing
// newline and a preceding carriage return. A longer line is truncated to max
// bytes and the remainder is discarded up to the next newline; truncation is
// not an error. EOF before any byte yields an empty line.
func readLine(r *bufio.Reader, max int) ([]byte, error) {
	line := make([]byte, 0, max)
	for len(line) < max {
		b, err := r.ReadByte()
		if err == io.EOF {
			return trimCR(line), nil
		}
		if err != nil {
			return nil, err
		}
		if b == '\n' {
			return trimCR(line), nil
		}
		line = append(line, b)
	}

	// Line exceeds the cap: drop the rest of it.
	for n := 0; n < maxDiscard; n++ {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if b == '\n' {
			break
		}
	}
	return line, nil
}

func trimCR(line []byte) []byte {
	return bytes.TrimSuffix(line, []byte{'\r'})
}
