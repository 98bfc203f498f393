package cmd

import "testing"

func setPersistentFlag(t *testing.T, name, value string) {
	t.Helper()
	flag := rootCmd.PersistentFlags().Lookup(name)
	if flag == nil {
		t.Fatalf("flag %q not registered", name)
	}
	prev := flag.Value.String()
	if err := rootCmd.PersistentFlags().Set(name, value); err != nil {
		t.Fatalf("set --%s failed: %v", name, err)
	}
	t.Cleanup(func() {
		_ = flag.Value.Set(prev)
		flag.Changed = false
	})
}

func TestRequestedFormatDefault(t *testing.T) {
	if got := requestedFormat(rootCmd); got != "text" {
		t.Fatalf("expected text default, got %q", got)
	}
}

func TestRequestedFormatAlias(t *testing.T) {
	setPersistentFlag(t, "format", "yaml")
	if got := requestedFormat(rootCmd); got != "yaml" {
		t.Fatalf("expected --format alias to apply, got %q", got)
	}
}

func TestRequestedFormatOutputWinsOverAlias(t *testing.T) {
	setPersistentFlag(t, "format", "yaml")
	setPersistentFlag(t, "output", "json")
	if got := requestedFormat(rootCmd); got != "json" {
		t.Fatalf("expected --output to win over --format, got %q", got)
	}
}
