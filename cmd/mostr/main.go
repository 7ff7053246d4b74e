// Command mostr is the terminal client for the task store: it loads the
// local relay journal, replays it into a store.Store, and exposes
// navigation and task-authoring operations as cobra subcommands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/xeruf/mostr-go/internal/config"
	"github.com/xeruf/mostr-go/internal/debug"
	"github.com/xeruf/mostr-go/internal/event"
	"github.com/xeruf/mostr-go/internal/plugin"
	"github.com/xeruf/mostr-go/internal/relay"
	"github.com/xeruf/mostr-go/internal/store"
	"github.com/xeruf/mostr-go/internal/timeparse"
	"github.com/xeruf/mostr-go/internal/ui"
	"github.com/xeruf/mostr-go/internal/view"
)

// rootCtx is cancelled on process interrupt; the journal watcher and any
// long-running subcommand (watch) select on it.
var rootCtx context.Context

var (
	s *store.Store
	v *view.View
	r *relay.Relay
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use: "mostr",
	Short: "A decentralized, event-sourced task tracker",
	Long: `mostr folds a stream of signed events from a relay journal into a
forest of tasks, and lets you browse, filter, and author new events
against it from the terminal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return bootstrap(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, args)
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "nav", Title: "Navigation:"},
		&cobra.Group{ID: "authoring", Title: "Authoring:"},
		&cobra.Group{ID: "view", Title: "Viewing:"},
	)
	rootCmd.PersistentFlags().Bool("json", false, "output machine-readable JSON where supported")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().IntP("depth", "d", 0, "override the configured navigation depth for this invocation")
	rootCmd.PersistentFlags().StringSlice("properties", nil, "override the configured property columns for this invocation")
}

func bootstrap(cmd *cobra.Command) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	debugFlag, _ := cmd.Flags().GetBool("debug")
	debug.SetEnabled(debugFlag || debug.Enabled())

	jsonOutput, _ = cmd.Flags().GetBool("json")

	ui.ConfigureColorProfile()

	identityPath := config.GetString("identity.path")
	if identityPath == "" {
		home, _ := os.UserHomeDir()
		identityPath = filepath.Join(home, ".mostr", "identity")
	}
	author, err := relay.LoadOrCreateIdentity(identityPath)
	if err != nil {
		return fmt.Errorf("loading identity: %w", err)
	}

	journalPath := config.GetString("relay.journal")
	if journalPath == "" {
		home, _ := os.UserHomeDir()
		journalPath = filepath.Join(home, ".mostr", "journal.jsonl")
	}
	rl, err := relay.New(journalPath, author)
	if err != nil {
		return fmt.Errorf("opening relay journal: %w", err)
	}
	r = rl

	s = store.New()
	events, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("replaying journal: %w", err)
	}
	for _, ev := range events {
		s.Accept(ev)
	}

	v = view.New(s, r, author)
	applyConfiguredView()
	applyFlagOverrides(cmd)

	if pluginPath := config.GetString("plugin.dir"); pluginPath != "" {
		if wasm, err := os.ReadFile(pluginPath); err == nil {
			if resolver, err := plugin.Load(rootCtx, pluginPath, wasm); err == nil {
				v.Plugin = resolver
			} else {
				debug.Logf("main: loading plugin %s: %v", pluginPath, err)
			}
		} else {
			debug.Logf("main: reading plugin %s: %v", pluginPath, err)
		}
	}

	return nil
}

func applyConfiguredView() {
	if depth := config.GetInt("view.depth"); depth != 0 {
		v.Depth = depth
	}
	if props := config.GetStringSlice("view.properties"); len(props) > 0 {
		v.Properties = props
	}
	if filter := config.GetString("view.state-filter"); filter != "" {
		v.SetStateFilter(&filter)
	}
}

func applyFlagOverrides(cmd *cobra.Command) {
	if cmd.Flags().Changed("depth") {
		depth, _ := cmd.Flags().GetInt("depth")
		v.Depth = depth
	}
	if cmd.Flags().Changed("properties") {
		props, _ := cmd.Flags().GetStringSlice("properties")
		v.Properties = props
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	rootCtx = ctx
	defer cancel()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseTrackingStamp applies the configured max-future-hours bound to
// the relative-time parsing contract.
func parseTrackingStamp(input string) (int64, bool) {
	maxFuture := config.GetInt("timeparse.max-future-hours")
	if maxFuture == 0 {
		maxFuture = 6
	}
	return timeparse.ParseTrackingStampMaxFuture(input, time.Now(), maxFuture)
}

// resolveTaskArg accepts either a hex event id or a 1-based index into
// the view's currently visible tasks — a convenience for referring to a
// row just printed without retyping its full id.
func resolveTaskArg(arg string) (event.ID, bool) {
	if id, err := event.IDFromHex(arg); err == nil {
		return id, true
	}
	tasks := v.CurrentTasks()
	var idx int
	if _, err := fmt.Sscanf(arg, "%d", &idx); err == nil && idx >= 1 && idx <= len(tasks) {
		return tasks[idx-1].ID(), true
	}
	return event.ID{}, false
}
