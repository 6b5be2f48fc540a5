package main

import (
	"fmt"
	"io"
	"strings"

	unipalette "github.com/alnah/go-unipalette"
)

// maxDecodeInput bounds a data URL read from standard input.
const maxDecodeInput = 64 << 20

// runDecode prints the document carried by a data URL. The URL is the
// single argument, or standard input when absent or "-".
func runDecode(args []string, env *Environment) error {
	positional, err := parseNoFlags("decode", args, env.Stderr, printDecodeUsage)
	if err != nil {
		return err
	}

	var input string
	switch {
	case len(positional) > 1:
		return fmt.Errorf("%w: decode takes one data URL, got %d arguments", ErrUsage, len(positional))
	case len(positional) == 1 && positional[0] != stdioPath:
		input = positional[0]
	default:
		data, err := io.ReadAll(io.LimitReader(env.Stdin, maxDecodeInput))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		input = string(data)
	}

	payload, err := unipalette.Decode(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	if _, err := io.WriteString(env.Stdout, payload.Document); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
