// Version command for the kegtrack CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridable at build time with -ldflags.
var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the kegtrack version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "kegtrack v%s\n", version)
	},
}
