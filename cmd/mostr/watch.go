package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xeruf/mostr-go/internal/event"
	"github.com/xeruf/mostr-go/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	GroupID: "view",
	Short:   "Follow the journal, reprinting the view on every new event",
	Long: `Run until interrupted, watching the relay journal for events
appended by other mostr processes (or this one) and re-rendering the
current view each time one arrives.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.Print(cmd.OutOrStdout(), v, time.Now())

		onEvent := func(ev event.Event) {
			s.Accept(ev)
			ui.Print(cmd.OutOrStdout(), v, time.Now())
		}
		if err := r.Watch(rootCtx, onEvent); err != nil {
			return fmt.Errorf("watching journal: %w", err)
		}
		<-rootCtx.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
