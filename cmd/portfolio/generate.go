package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jun.dev/internal/services"
	"jun.dev/internal/site"
)

var generateCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Export the portfolio as a static site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter := site.NewExporter(services.NewProjectService(cfg.Projects), *cfg.Site, logger)
		if err := exporter.Export(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote static site to %s\n", args[0])
		return nil
	},
}
