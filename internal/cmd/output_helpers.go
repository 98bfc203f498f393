package cmd

import (
	"context"

	"github.com/umbrellabird/treewatch/internal/output"
)

func structuredOutputRequested() bool {
	return output.IsStructured(GetOutputFormat())
}

func printStructured(data interface{}) error {
	ctx := currentContext()
	printer := output.NewPrinter(stdoutFromContext(ctx), GetOutputFormat())
	return printer.Print(ctx, data)
}

func currentContext() context.Context {
	if rootCmd != nil && rootCmd.Context() != nil {
		return rootCmd.Context()
	}
	return context.Background()
}
