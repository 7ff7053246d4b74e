package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xeruf/mostr-go/internal/ui"
)

var showCmd = &cobra.Command{
	Use:     "show <id>",
	GroupID: "view",
	Short:   "Render a single task's notes as markdown",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, ok := resolveTaskArg(args[0])
		if !ok {
			return fmt.Errorf("no such task %q", args[0])
		}
		t, ok := s.GetByID(id)
		if !ok {
			return fmt.Errorf("no such task %q", args[0])
		}
		ui.PrintDetail(cmd.OutOrStdout(), t)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
