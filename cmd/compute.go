package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/navagraha/jyotish/internal/birthfile"
	"github.com/navagraha/jyotish/internal/config"
	"github.com/navagraha/jyotish/internal/ephem"
	"github.com/navagraha/jyotish/internal/kundali"
	"github.com/navagraha/jyotish/internal/telemetry"
)

// addBirthFlags registers the shared birth-input flag set on a
// subcommand. Either --file or the --date/--time pair selects the birth;
// coordinates fall back to the config defaults.
func addBirthFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "read birth data from a TOML file")
	cmd.Flags().String("date", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().String("time", "", "birth time (HH:MM or HH:MM:SS)")
	cmd.Flags().String("tz", "", "IANA timezone of the birth time")
	cmd.Flags().Float64("lat", 0, "birth latitude in degrees, north positive")
	cmd.Flags().Float64("lon", 0, "birth longitude in degrees, east positive")
}

// birthFromFlags resolves the birth input for a subcommand invocation.
func birthFromFlags(cmd *cobra.Command, cfg config.Config) (kundali.BirthData, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		f, err := birthfile.Load(path)
		if err != nil {
			return kundali.BirthData{}, err
		}
		return f.BirthData()
	}

	date, _ := cmd.Flags().GetString("date")
	clock, _ := cmd.Flags().GetString("time")
	if date == "" || clock == "" {
		return kundali.BirthData{}, fmt.Errorf("need --file, or both --date and --time")
	}

	zone, _ := cmd.Flags().GetString("tz")
	if zone == "" {
		zone = cfg.Timezone
	}
	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")
	if !cmd.Flags().Changed("lat") {
		lat = cfg.Latitude
	}
	if !cmd.Flags().Changed("lon") {
		lon = cfg.Longitude
	}

	f := birthfile.File{Date: date, Time: clock, Timezone: zone, Latitude: lat, Longitude: lon}
	return f.BirthData()
}

// computeOptions assembles the provider and emitter for a run. The
// returned close function flushes the trace file, if any.
func computeOptions(cfg config.Config) (kundali.Options, func(), error) {
	opts := kundali.Options{}

	if cfg.ElementsFile != "" {
		fp, err := ephem.LoadFileProvider(cfg.ElementsFile, ephem.MeanProvider{})
		if err != nil {
			return opts, nil, err
		}
		opts.Provider = fp
	}

	closer := func() {}
	if cfg.TracePath != "" {
		em, err := telemetry.NewEmitter(cfg.TracePath)
		if err != nil {
			return opts, nil, err
		}
		opts.Emitter = em
		closer = func() { _ = em.Close() }
	}
	return opts, closer, nil
}

// computeFromFlags is the common front half of every subcommand: load
// config, resolve the birth, run the pipeline.
func computeFromFlags(cmd *cobra.Command) (*kundali.Kundali, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, fmt.Errorf("failed to load config: %w", err)
	}

	birth, err := birthFromFlags(cmd, cfg)
	if err != nil {
		return nil, cfg, err
	}

	opts, closeTrace, err := computeOptions(cfg)
	if err != nil {
		return nil, cfg, err
	}
	defer closeTrace()

	start := time.Now()
	k, err := kundali.Compute(birth, opts)
	if err != nil {
		return nil, cfg, err
	}
	if cfg.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "computed in %s\n", time.Since(start).Round(time.Millisecond))
	}
	return k, cfg, nil
}
