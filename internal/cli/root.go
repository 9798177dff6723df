// Package cli implements the rotladder command-line interface.
//
// Commands:
//   - run: open a window and animate the chain
//   - tui: animate the chain in the terminal
//   - replay: run a JSON script headless and print its snapshots
//
// Every command reads an optional TOML file (--config) and accepts --nodes
// and --mode overrides. --verbose (-v) enables debug logging of ladder events.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/rotladder"
	"github.com/phanxgames/rotladder/internal/config"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. Typically
// called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the CLI with ctx and returns the first command error.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose    bool
	configPath string
	nodes      int
	mode       string
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:          "rotladder",
		Short:        "Animate a chain of rotating ladder rungs",
		Long:         `rotladder draws a vertical chain of two-segment rungs. Each tap sweeps an animation through the chain, one node at a time, reversing at either end.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if flags.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("rotladder %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	pf := root.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&flags.configPath, "config", "c", "", "path to a TOML config file")
	pf.IntVar(&flags.nodes, "nodes", 0, "number of nodes in the chain (overrides config)")
	pf.StringVar(&flags.mode, "mode", "", "sweep mode: chain or node (overrides config)")

	root.AddCommand(newRunCmd(flags))
	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newReplayCmd(flags))
	return root
}

// loadConfig reads the config file, if any, and applies flag overrides.
func (f *globalFlags) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if f.nodes != 0 {
		cfg.Nodes = f.nodes
	}
	if f.mode != "" {
		cfg.Mode = f.mode
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// newRenderer builds a renderer from cfg that logs ladder events to l.
func newRenderer(cfg config.Config, l *charmlog.Logger) *rotladder.Renderer {
	r := rotladder.NewRenderer(cfg.Options())
	r.SetLogger(l)
	l.Debug("renderer ready", "nodes", cfg.Nodes, "period_ms", cfg.PeriodMS, "mode", cfg.Mode)
	return r
}
