// Sportsdash is a terminal dashboard for league scores, standings, teams
// and players.
//
// Usage:
//
//	sportsdash [command] [flags]
//
// Running without arguments launches the interactive dashboard.
// See 'sportsdash --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/sportsdash/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sportsdash",
	Short: "Terminal sports dashboard",
	Long: `A terminal dashboard for league scores, standings, teams and players.

Scores, standings and search are tabs; games, teams and players open as
stacked detail panels. Settings changed in the dashboard are saved to the
config file.

If no command is specified, the interactive dashboard will launch.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sportsdash %s\n", version.Full())
	},
}
