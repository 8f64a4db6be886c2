package cli

import (
	"fmt"
	"os"

	cfgpkg "github.com/ankestat/ankestat/internal/config"
	"github.com/ankestat/ankestat/internal/utils"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "ankestat",
	Short: "ankestat: descriptive and reliability statistics for Likert-scale CSV exports",
	Long: `ankestat reads CSV exports of Likert-scale survey responses (as produced
by online form services), validates them against the configured response
scale, and computes per-question descriptive statistics, Cronbach's alpha
and optional grouped breakdowns.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", utils.EnvOr("ANKESTAT_CONFIG", ""), "config file (default is ~/.ankestat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults.
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{}
	}
	cfg = c
}
