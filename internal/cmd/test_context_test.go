package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/umbrellabird/treewatch/internal/output"
)

func withTestContext(t *testing.T, format output.Format) (*bytes.Buffer, *bytes.Buffer, func()) {
	t.Helper()
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}

	ctx := withIO(context.Background(), in, out, errBuf)
	ctx = output.WithFormat(ctx, format)
	ctx = output.WithQuiet(ctx, true)
	rootCmd.SetContext(ctx)

	prevType := outputType
	prevFmt := outputFmt
	prevCfg := cfg
	outputType = format
	outputFmt = string(format)
	cfg = nil

	return out, errBuf, func() {
		outputType = prevType
		outputFmt = prevFmt
		cfg = prevCfg
		rootCmd.SetContext(context.Background())
	}
}

func setCmdContext(cmd *cobra.Command) {
	if cmd == nil {
		return
	}
	cmd.SetContext(rootCmd.Context())
}
