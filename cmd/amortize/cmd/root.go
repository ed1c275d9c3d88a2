// Package cmd implements the amortize command line.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/amortize/internal/config"
	"github.com/iwvelando/amortize/pkg/constants"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X ...cmd.Version=...".
var Version = "dev"

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "amortize",
	Short: "Loan amortization schedules",
	Long: `amortize computes the periodic payment, full amortization schedule and
cost summary of fixed-rate loans.

Loans come from a YAML configuration file or from command line flags.
Results can be printed as a table, CSV, JSON or YAML, served over HTTP,
or recomputed whenever the configuration file changes.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

// loadConfig reads the configuration file. When the file was not named
// explicitly and does not exist, the built-in defaults are used.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	explicit := cmd.Flags().Changed("config")
	if _, err := os.Stat(cfgFile); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config.LoadConfigurationFromReader(strings.NewReader("{}"))
		}
	}

	conf, err := config.LoadConfiguration(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", cfgFile, err)
	}
	return conf, nil
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: %v\n", msg, err)
}
