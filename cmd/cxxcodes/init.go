package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/felixgeelhaar/cxxcodes/internal/domain/diagcode"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var (
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize cxxcodes configuration",
	Long: `Initialize cxxcodes configuration for your project.

This command creates .cxxcodes/config.yaml with the default output,
unmapped policy and logging settings.

Examples:
  cxxcodes init              # Initialize in current directory
  cxxcodes init --force      # Overwrite existing configuration`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	if noColor {
		green = fmt.Sprint
		yellow = fmt.Sprint
	}

	var out io.Writer = os.Stdout
	if cmd != nil {
		out = cmd.OutOrStdout()
	}
	configDir := config.DefaultConfigDir
	configPath := filepath.Join(configDir, config.DefaultConfigFile)

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		if !initForce {
			return fmt.Errorf("configuration already exists at %s\nUse --force to overwrite", configPath)
		}
		fmt.Fprintf(out, "%s Overwriting existing configuration\n", yellow("!"))
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := config.WriteDefault(configPath); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(out, "%s Created %s\n", green("✓"), configPath)
	if shadowed, ok := config.NewLoader(config.SecondaryConfigFiles...).Find(); ok {
		fmt.Fprintf(out, "%s %s is ignored while %s exists\n", yellow("!"), shadowed, configPath)
	}
	fmt.Fprintf(out, "  %d rule ids map to %s-W codes\n", diagcode.Len(), diagcode.Namespace)

	return nil
}
