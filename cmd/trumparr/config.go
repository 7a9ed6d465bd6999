package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/trumparr/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without contacting any service.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var forceInit bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	fmt.Printf("Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			printConfigErrors(configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(cfg)
	fmt.Println("\nConfiguration valid!")
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	if err := config.WriteDefault(path, forceInit); err != nil {
		if errors.Is(err, config.ErrExists) {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func printConfigErrors(e *config.Error) {
	fmt.Printf("Problems in %s:\n", e.Path)
	for _, sec := range e.Sections() {
		switch sec.Name {
		case "":
			fmt.Println()
		case "env":
			fmt.Println("\nUnset environment variables:")
		default:
			fmt.Printf("\n[%s]\n", sec.Name)
		}
		for _, p := range sec.Problems {
			fmt.Printf("  - %s\n", p)
		}
	}
	fmt.Println()
}

func printConfigSummary(cfg *config.Config) {
	fmt.Println("Configuration Summary:")

	libs := []string{}
	if cfg.Radarr.Enabled {
		libs = append(libs, "radarr ("+cfg.Radarr.URL+")")
	}
	if cfg.Sonarr.Enabled {
		libs = append(libs, "sonarr ("+cfg.Sonarr.URL+")")
	}
	fmt.Printf("  Libraries:  %s\n", strings.Join(libs, ", "))
	fmt.Printf("  Trackers:   %s\n", strings.Join(cfg.Trackers, ", "))
	fmt.Printf("  Reports:    %s\n", cfg.LogFiles.OutputPath)
	fmt.Printf("  Sleep:      %ds\n", cfg.SleepTimer)
	fmt.Printf("  Retry:      %d attempts, %.1fs start, x%.1f, %.1fs max\n",
		cfg.HTTPRetry.Attempts, cfg.HTTPRetry.StartTimeout, cfg.HTTPRetry.Factor, cfg.HTTPRetry.MaxTimeout)
}
