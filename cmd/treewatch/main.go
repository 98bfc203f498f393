package main

import (
	"os"

	"github.com/umbrellabird/treewatch/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
