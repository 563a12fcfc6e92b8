package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/tsscaffold/internal/cli"
	"github.com/arthur-debert/tsscaffold/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TSSCAFFOLD",
		Section: "1",
		Source:  "tsscaffold " + version.Version,
		Manual:  "tsscaffold manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
