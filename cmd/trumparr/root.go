package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/trumparr/internal/config"
)

var version = "dev"

// errInterrupted ends the run with a non-zero exit after an orderly shutdown.
var errInterrupted = errors.New("interrupted")

var (
	configPath string
	verbose    bool
	scanFlags  struct {
		radarr     bool
		sonarr     bool
		sleepTimer int
		outputPath string
		scriptLog  string
	}
)

var rootCmd = &cobra.Command{
	Use:   "trumparr",
	Short: "Check a Radarr/Sonarr library against private trackers",
	Long: `trumparr - find library files that are missing from a tracker or
trumpable because the tracker's copy is from a banned group.

Reports are written to <output_path>/<TRACKER>/.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScan,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var cfgErr *config.Error
		switch {
		case errors.As(err, &cfgErr):
			printConfigErrors(cfgErr)
		case !errors.Is(err, errInterrupted):
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	f := rootCmd.Flags()
	f.BoolVar(&scanFlags.radarr, "radarr", false, "Check the Radarr library")
	f.BoolVar(&scanFlags.sonarr, "sonarr", false, "Check the Sonarr library")
	f.IntVarP(&scanFlags.sleepTimer, "sleep-timer", "s", 10, "Seconds to wait between items")
	f.StringVarP(&scanFlags.outputPath, "output-path", "o", "", "Directory for reports and the script log")
	f.StringVarP(&scanFlags.scriptLog, "log-file", "l", "", "Script log file name")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("trumparr {{.Version}}\n")
}

// overridesFromFlags returns only the flags the user actually set.
func overridesFromFlags(cmd *cobra.Command) config.Overrides {
	o := config.Overrides{Radarr: scanFlags.radarr, Sonarr: scanFlags.sonarr}
	flags := cmd.Flags()
	if flags.Changed("sleep-timer") {
		o.SleepTimer = &scanFlags.sleepTimer
	}
	if flags.Changed("output-path") {
		o.OutputPath = &scanFlags.outputPath
	}
	if flags.Changed("log-file") {
		o.ScriptLog = &scanFlags.scriptLog
	}
	return o
}

// loadConfig resolves the config path, applies flag overrides and validates.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg, err := config.LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyOverrides(overridesFromFlags(cmd))
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.Error{Path: path, Errors: errs}
	}
	return cfg, nil
}
