package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/rotladder"
	"github.com/phanxgames/rotladder/internal/tui"
)

func newRunCmd(flags *globalFlags) *cobra.Command {
	var (
		showFPS    bool
		scriptPath string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and animate the chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			runCfg, err := cfg.RunConfig()
			if err != nil {
				return err
			}
			if showFPS {
				runCfg.ShowFPS = true
			}
			if scriptPath != "" {
				if runCfg.Script, err = readScript(scriptPath); err != nil {
					return err
				}
			}
			logger.Info("opening window", "width", runCfg.Width, "height", runCfg.Height)
			return rotladder.Run(newRenderer(cfg, logger), runCfg)
		},
	}
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show FPS/TPS overlay")
	cmd.Flags().StringVar(&scriptPath, "script", "", "JSON script to play inside the window")
	return cmd
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Animate the chain in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			runCfg, err := cfg.RunConfig()
			if err != nil {
				return err
			}
			// The terminal owns stdout; keep ladder logs quiet.
			r := rotladder.NewRenderer(cfg.Options())
			return tui.Run(r, runCfg.Style)
		},
	}
}

func newReplayCmd(flags *globalFlags) *cobra.Command {
	var (
		maxFrames int
		tps       int
	)
	cmd := &cobra.Command{
		Use:   "replay <script.json>",
		Short: "Run a script headless and print its snapshots as JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			script, err := readScript(args[0])
			if err != nil {
				return err
			}
			if tps < 1 {
				return fmt.Errorf("--tps must be positive, got %d", tps)
			}

			start := time.Now()
			snaps, err := rotladder.Replay(newRenderer(cfg, logger), script, time.Second/time.Duration(tps), maxFrames)
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, s := range snaps {
				if encErr := enc.Encode(s); encErr != nil {
					return fmt.Errorf("write snapshot: %w", encErr)
				}
			}
			if err != nil {
				return err
			}
			logger.Info("replay finished", "snapshots", len(snaps), "elapsed", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().IntVar(&maxFrames, "frames", 100000, "maximum frames before giving up")
	cmd.Flags().IntVar(&tps, "tps", 60, "simulated ticks per second")
	return cmd
}

func readScript(path string) (*rotladder.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := rotladder.LoadScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
