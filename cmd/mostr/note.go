package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:     "note <text>",
	GroupID: "authoring",
	Short:   "Attach a note to the current position",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !v.Note(strings.Join(args, " ")) {
			return fmt.Errorf("no active position; move to a task first")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
}
