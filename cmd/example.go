package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/retirement-savings/internal/config"
)

var flagExampleOut string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example projection input file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		parser := config.NewInputParser()
		if err := parser.SaveInput(parser.CreateExampleInput(), flagExampleOut); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example input written to %s\n", flagExampleOut)
		return nil
	},
}

func init() {
	exampleCmd.Flags().StringVar(&flagExampleOut, "out", "example_input.yaml", "Output file")
	rootCmd.AddCommand(exampleCmd)
}
