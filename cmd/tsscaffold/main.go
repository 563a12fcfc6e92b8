package main

import (
	"os"

	"github.com/arthur-debert/tsscaffold/internal/cli"
	"github.com/arthur-debert/tsscaffold/pkg/output"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output.NewConsole(os.Stderr, output.DetectNoColor(os.Stderr)).Error(err)
		os.Exit(1)
	}
}
