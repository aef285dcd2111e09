package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	name    = "ctxgrep"
	version = "dev"
	commit  = "unknown"
)

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s v%s\n", name, version)
	fmt.Fprintf(out, "Commit: %s\n", commit)
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}
