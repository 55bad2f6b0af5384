package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/navagraha/jyotish/internal/birthfile"
	"github.com/navagraha/jyotish/internal/config"
	"github.com/navagraha/jyotish/internal/kundali"
	"github.com/navagraha/jyotish/internal/report"
)

var watchCmd = &cobra.Command{
	Use:   "watch [birth-file]",
	Short: "Recompute the chart whenever a birth file changes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := birthfile.DefaultPath
		if len(args) == 1 {
			path = args[0]
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		opts, closeTrace, err := computeOptions(cfg)
		if err != nil {
			return err
		}
		defer closeTrace()

		if err := renderFile(cmd, path, opts); err != nil {
			return err
		}

		w, err := birthfile.NewWatcher(path)
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (ctrl-c to stop)\n", path)

		for {
			select {
			case <-w.Changes:
				if err := renderFile(cmd, path, opts); err != nil {
					// A half-saved file is not fatal; report and wait
					// for the next write.
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				}
			case <-sig:
				return nil
			}
		}
	},
}

func renderFile(cmd *cobra.Command, path string, opts kundali.Options) error {
	f, err := birthfile.Load(path)
	if err != nil {
		return err
	}
	birth, err := f.BirthData()
	if err != nil {
		return err
	}
	k, err := kundali.Compute(birth, opts)
	if err != nil {
		return err
	}
	report.New(cmd.OutOrStdout()).Render(k)
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
