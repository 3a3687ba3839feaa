package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "scopetrace",
	Short: "Box-drawn tracing of nested scopes",
	Long: `scopetrace renders entry into and exit from nested scopes as an indented
box-drawing trace, including contexts captured on one goroutine and
replayed on another.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(tokenCmd)
	addPersistentFlags(rootCmd)
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "TOML config file")
	cmd.PersistentFlags().String("mode", "", "trace mode (verbose|compact|disabled)")
	cmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
