package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:     "move <id>",
	GroupID: "nav",
	Short:   "Move the current position to a task",
	Aliases: []string{"cd"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, ok := resolveTaskArg(args[0])
		if !ok {
			return fmt.Errorf("no such task %q", args[0])
		}
		v.MoveTo(&id)
		return nil
	},
}

var upCmd = &cobra.Command{
	Use:     "up",
	GroupID: "nav",
	Short:   "Move the current position to its parent",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v.MoveUp()
		return nil
	},
}

var rootPositionCmd = &cobra.Command{
	Use:     "root",
	GroupID: "nav",
	Short:   "Move the current position to the root",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v.MoveTo(nil)
		return nil
	},
}

var tagCmd = &cobra.Command{
	Use:     "tag <label>",
	GroupID: "nav",
	Short:   "Add a hashtag to the active filter set",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v.AddTag(args[0])
		return nil
	},
}

var untagCmd = &cobra.Command{
	Use:     "untag",
	GroupID: "nav",
	Short:   "Clear the active hashtag filter",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v.ClearTags()
		return nil
	},
}

var filterCmd = &cobra.Command{
	Use:     "filter [state]",
	GroupID: "nav",
	Short:   "Set or clear the active state-name filter",
	Long: `Set the active state-name filter to the given label, or clear it
with --clear. With no argument and no --clear, prints the active filter.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clear, _ := cmd.Flags().GetBool("clear")
		if clear {
			v.SetStateFilter(nil)
			return nil
		}
		if len(args) == 0 {
			if state, ok := v.StateFilter(); ok {
				fmt.Fprintln(cmd.OutOrStdout(), state)
			}
			return nil
		}
		v.SetStateFilter(&args[0])
		return nil
	},
}

func init() {
	filterCmd.Flags().Bool("clear", false, "clear the active state filter")
	rootCmd.AddCommand(moveCmd, upCmd, rootPositionCmd, tagCmd, untagCmd, filterCmd)
}
