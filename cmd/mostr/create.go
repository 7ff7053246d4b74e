package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:     "new [name: hashtag...]",
	GroupID: "authoring",
	Short:   "Create a task under the current position",
	Long: `Create a task under the current position.

Input of the form "name: tag1 tag2" sets both the task name and its
hashtags in one line; without the ": " separator the whole argument is
the name. With no arguments, an interactive form is opened instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var input string
		if len(args) == 1 {
			input = args[0]
		} else {
			var err error
			input, err = runCreateForm()
			if err != nil {
				return err
			}
		}

		id, ok := v.CreateTask(input)
		if !ok {
			return fmt.Errorf("failed to submit task")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", id)
		return nil
	},
}

// runCreateForm opens a short huh form (title + hashtags) and returns
// the combined "name: tag1 tag2" string CreateTask expects, matching the
// reference tool's form-then-build pattern.
func runCreateForm() (string, error) {
	var title, hashtags string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("e.g., write release notes").
				Value(&title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Hashtags").
				Description("space-separated, optional").
				Placeholder("e.g., urgent backend").
				Value(&hashtags),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return "", fmt.Errorf("task creation canceled")
		}
		return "", fmt.Errorf("form error: %w", err)
	}

	hashtags = strings.TrimSpace(hashtags)
	if hashtags == "" {
		return title, nil
	}
	return title + ": " + hashtags, nil
}

func init() {
	rootCmd.AddCommand(newCmd)
}
