// Root command for the kegtrack CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tapworks/kegtrack/internal/clock"
	"github.com/tapworks/kegtrack/internal/shell"
	"github.com/tapworks/kegtrack/internal/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "kegtrack",
	Short: "Kegtrack is an interactive keg inventory tracker",
	Long: `Kegtrack tracks beer kegs and their contents for a single session.
It presents an interactive menu for adding kegs, updating their current
volume, and listing inventory. State is held in memory only and is
discarded when the program exits.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd.Flags())
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		log, err := newLogger(settings)
		if err != nil {
			return fmt.Errorf("configure logging: %w", err)
		}

		store := tracker.New(clock.NewSystem())
		shell.New(os.Stdin, os.Stdout, store, log).Run()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log verbosity on stderr (default: warn)")

	rootCmd.AddCommand(versionCmd)
}
