package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/retirement-savings/internal/output"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List report formats and aliases",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Formats: %s, all\n", strings.Join(output.AvailableFormatterNames(), ", "))
		fmt.Fprintf(out, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
