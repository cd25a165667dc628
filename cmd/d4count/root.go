// Root command for the d4count CLI.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/quartic/internal/paths"
	"github.com/mesh-intelligence/quartic/pkg/quartic"
)

// Global flag values.
var (
	flagConfigDir string
	flagLatex     bool
	flagVerbose   bool
)

// cfg holds the configuration loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use it.
var cfg *viper.Viper

// logger emits diagnostics to stderr. Disabled unless --verbose is given,
// so tables on stdout stay clean for piping.
var logger = zerolog.Nop()

var rootCmd = &cobra.Command{
	Use:     "d4count",
	Short:   "d4count counts quartic fields with Galois group D4",
	Version: quartic.Version,
	Long: `d4count computes the tables behind counting quartic D4 fields by
conductor: the splitting types of primes across the subfield lattice, and
the expected number of fields with conductor up to a bound.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
				With().Timestamp().Logger()
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err = loadConfig(configDir)
		if err != nil {
			return err
		}
		logger.Debug().Str("config_dir", configDir).Msg("configuration loaded")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagLatex, "latex", false, "render tables as LaTeX")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log diagnostics to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(splittingCmd)
	rootCmd.AddCommand(expectCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > D4COUNT_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// latexOutput reports whether tables should render as LaTeX: the --latex
// flag wins, otherwise the config.yaml value.
func latexOutput() bool {
	return flagLatex || cfg.GetBool(cfgKeyLatex)
}
