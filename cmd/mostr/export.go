package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xeruf/mostr-go/internal/archive"
)

var exportCmd = &cobra.Command{
	Use:     "export",
	GroupID: "view",
	Short:   "Export the current projection to a SQLite file for reporting",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("sqlite")
		if path == "" {
			return fmt.Errorf("--sqlite path.db is required")
		}
		if err := archive.Export(rootCtx, s, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d tasks to %s\n", len(s.AllTasks()), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("sqlite", "", "destination SQLite file")
	rootCmd.AddCommand(exportCmd)
}
