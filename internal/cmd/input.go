package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// openInput returns a reader over the optional file argument, falling back
// to stdin when the argument is absent or "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	source := "-"
	if len(args) > 0 {
		source = strings.TrimSpace(args[0])
	}
	if source == "" || source == "-" {
		stdin := stdinFromContext(cmd.Context())
		if !inputHasData(stdin) {
			return nil, fmt.Errorf("no input: pass a file argument or pipe tree output to stdin")
		}
		return io.NopCloser(stdin), nil
	}

	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", source, err)
	}
	return file, nil
}

// readInputSource reads content from a file path or stdin when source is "-".
func readInputSource(source string, stdin io.Reader) (string, error) {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return "", fmt.Errorf("empty input source")
	}

	var r io.Reader
	if trimmed == "-" {
		if stdin != nil {
			r = stdin
		} else {
			r = os.Stdin
		}
	} else {
		file, err := os.Open(trimmed)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", trimmed, err)
		}
		defer file.Close()
		r = file
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func inputHasData(r io.Reader) bool {
	if r == nil {
		r = os.Stdin
	}
	if file, ok := r.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) == 0
	}
	return true
}
