package main

import (
	"fmt"

	"github.com/jonathan/csb-validator/internal/schemas"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the JSON report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := cmd.OutOrStdout().Write(schemas.ReportSchema()); err != nil {
			return fmt.Errorf("failed to write schema: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
