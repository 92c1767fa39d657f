package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/geange/kmp"
)

// maxLineLen bounds the text read from stdin; longer lines are truncated.
const maxLineLen = 4096

func usage() {
	fmt.Printf("%s - Testing program for kmp.\n", os.Args[0])
	fmt.Printf("Usage: %s [--verbose] <pattern>\n", os.Args[0])
	os.Exit(1)
}

// parseArgs accepts exactly "<pattern>" or "--verbose <pattern>". The flag is
// parsed by hand: a pattern may itself begin with '-' and must be taken
// verbatim.
func parseArgs(args []string) (pattern string, verbose bool, err error) {
	switch len(args) {
	case 1:
		return args[0], false, nil
	case 2:
		if args[0] != "--verbose" {
			return "", false, errors.New("invalid arguments")
		}
		return args[1], true, nil
	default:
		return "", false, errors.New("invalid number of arguments")
	}
}

func main() {
	pattern, verbose, err := parseArgs(os.Args[1:])
	if err == nil {
		err = run(os.Stdin, pattern, verbose)
	}
	if err != nil {
		fmt.Printf("Error: %v.\n", err)
		usage()
	}
}

// run reads one line of text, searches it for pattern and reports the
// elapsed scan time in microseconds.
func run(in io.Reader, pattern string, verbose bool) error {
	d, err := kmp.Compile([]byte(pattern))
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	text, err := readLine(bufio.NewReader(in), maxLineLen)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if verbose {
		fmt.Printf("Search: pattern = '%s' (%d distinct symbols), text length = %d\n",
			pattern, d.Alphabet(), len(text))
	}

	start := time.Now()
	idx := d.FindIndex(text)
	elapsed := time.Since(start)

	fmt.Printf("KMP: %d us\n", elapsed.Microseconds())

	if verbose {
		if idx >= 0 {
			fmt.Printf("Output: found at index %d\n", idx)
		} else {
			fmt.Println("Output: not found")
		}
	}
	return nil
}
