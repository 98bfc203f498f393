package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInputSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("root\n└── leaf\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, err := readInputSource(path, nil)
	if err != nil {
		t.Fatalf("readInputSource failed: %v", err)
	}
	if got != "root\n└── leaf" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestReadInputSourceFromStdin(t *testing.T) {
	got, err := readInputSource("-", strings.NewReader("  hello  \n"))
	if err != nil {
		t.Fatalf("readInputSource failed: %v", err)
	}
	if got != "hello" {
		t.Fatalf("expected trimmed stdin content, got %q", got)
	}
}

func TestReadInputSourceEmpty(t *testing.T) {
	if _, err := readInputSource("  ", nil); err == nil {
		t.Fatal("expected error for empty source")
	}
}

func TestReadInputSourceMissingFile(t *testing.T) {
	_, err := readInputSource("/nonexistent/query.jq", nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestOpenInputFallsBackToStdin(t *testing.T) {
	_, _, restore := withTestContext(t, "text")
	defer restore()
	setCmdContext(parseCmd)

	in, err := openInput(parseCmd, nil)
	if err != nil {
		t.Fatalf("openInput failed: %v", err)
	}
	defer in.Close()
}

func TestOpenInputDashMeansStdin(t *testing.T) {
	_, _, restore := withTestContext(t, "text")
	defer restore()
	setCmdContext(parseCmd)

	in, err := openInput(parseCmd, []string{"-"})
	if err != nil {
		t.Fatalf("openInput failed: %v", err)
	}
	defer in.Close()
}

func TestInputHasDataForPlainReader(t *testing.T) {
	if !inputHasData(strings.NewReader("data")) {
		t.Fatal("expected plain reader to report data")
	}
}

func TestInputHasDataCharDevice(t *testing.T) {
	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Skipf("cannot open %s: %v", os.DevNull, err)
	}
	defer devNull.Close()

	if inputHasData(devNull) {
		t.Fatal("expected character device to report no data")
	}
}

func TestOpenInputRejectsEmptyTerminalStdin(t *testing.T) {
	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Skipf("cannot open %s: %v", os.DevNull, err)
	}
	defer devNull.Close()

	_, _, restore := withTestContext(t, "text")
	defer restore()

	ctx := withIO(rootCmd.Context(), devNull, nil, nil)
	rootCmd.SetContext(ctx)
	setCmdContext(parseCmd)

	if _, err := openInput(parseCmd, nil); err == nil {
		t.Fatal("expected error when stdin is an empty terminal")
	}
}
