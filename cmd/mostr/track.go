package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xeruf/mostr-go/internal/event"
)

var trackCmd = &cobra.Command{
	Use:     "track <when> [id]",
	GroupID: "authoring",
	Short:   "Record a backdated tracking event",
	Long: `Record a tracking event for an arbitrary point in time, rather
than now: <when> is an hour of today, a "+N"/"in N" minute offset, or a
human date string (spec's relative-time parsing contract). With no id,
stops tracking as of <when>.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		stamp, ok := parseTrackingStamp(args[0])
		if !ok {
			return fmt.Errorf("could not parse %q as a time", args[0])
		}

		var tags []event.Tag
		if len(args) == 2 {
			id, ok := resolveTaskArg(args[1])
			if !ok {
				return fmt.Errorf("no such task %q", args[1])
			}
			tags = append(tags, event.EventTag(id, ""))
		}

		builder := event.NewBuilder(event.KindTracking, "", tags)
		ev, ok := r.SubmitAt(builder, time.Unix(stamp, 0))
		if !ok {
			return fmt.Errorf("failed to submit tracking event")
		}
		s.Accept(ev)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
}
