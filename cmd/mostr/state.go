package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xeruf/mostr-go/internal/event"
	"github.com/xeruf/mostr-go/internal/task"
)

func stateCmd(use, short string, state task.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use + " [id]",
		GroupID: "authoring",
		Short:   short,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comment, _ := cmd.Flags().GetString("comment")

			id, ok := currentOrArg(args)
			if !ok {
				return fmt.Errorf("no active position and no id given")
			}
			if !v.SetState(id, state, comment) {
				return fmt.Errorf("failed to submit state change")
			}
			return nil
		},
	}
	cmd.Flags().String("comment", "", "comment to attach to the state event")
	return cmd
}

// currentOrArg resolves the target task: the sole argument if given
// (as a hex id or a visible-row index), the current position otherwise.
func currentOrArg(args []string) (event.ID, bool) {
	if len(args) == 1 {
		return resolveTaskArg(args[0])
	}
	return v.Position()
}

func init() {
	rootCmd.AddCommand(
		stateCmd("open", "Mark a task Open", task.Open),
		stateCmd("done", "Mark a task Done", task.Done),
		stateCmd("close", "Mark a task Closed", task.Closed),
		stateCmd("active", "Mark a task Active", task.Active),
	)
}
