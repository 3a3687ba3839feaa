package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aalemi-dev/scopetrace/scopetrace"
)

var tokenCmd = &cobra.Command{
	Use:   "token <file> <line> <function>",
	Short: "Print the base token of a call site",
	Long: `Print the token a scope entered at the given call site gets on an empty
path, to find a call site in a trace or log.`,
	Example: "  scopetrace token server/handler.go 42 server.(*Handler).Serve",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		line, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid line %q: %w", args[1], err)
		}
		site := scopetrace.CallSite{File: args[0], Line: line, Function: args[2]}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), scopetrace.SiteToken(site))
		return err
	},
}
