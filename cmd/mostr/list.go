package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xeruf/mostr-go/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	GroupID: "view",
	Short:   "Print the current view as a table",
	Long: `Print the tasks currently visible at the active position, depth,
and filters as a table, one row per task and one column per configured
property. With --json, prints the same rows as a JSON array of objects
instead.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	if jsonOutput {
		return printListJSON(cmd)
	}
	ui.Print(cmd.OutOrStdout(), v, time.Now())
	return nil
}

func printListJSON(cmd *cobra.Command) error {
	now := time.Now().Unix()
	rows := make([]map[string]string, 0, len(v.CurrentTasks()))
	for _, t := range v.CurrentTasks() {
		row := make(map[string]string, len(v.Properties))
		for _, name := range v.Properties {
			row[name], _ = v.Get(t, name, now)
		}
		rows = append(rows, row)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encoding rows: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
