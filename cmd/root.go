package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gnolang/searchq"
	"github.com/gnolang/searchq/internal/config"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile         string
	timeout         time.Duration
	verbose         bool
	extendedAuthors bool

	logger *zap.Logger
)

// errParseFailed is returned when at least one query could not be parsed.
var errParseFailed = errors.New("some queries failed to parse")

var rootCmd = &cobra.Command{
	Use:              "searchq [queries...]",
	Short:            "searchq - translate search queries into operators and clauses",
	TraverseChildren: true, // Prioritize subcommands
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		// Format: searchq [query ...] => behaves like the translate subcommand
		translateCmd.Run(translateCmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file (default "+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Timeout for batch processing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&extendedAuthors, "extended-authors", false, "Separate author initials with dots")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(batchCmd)
}

func setupLogger() error {
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	return err
}

// envPrefix prefixes the environment variables that override the
// configuration file, e.g. SEARCHQ_WORKERS.
const envPrefix = "searchq"

// loadConfig reads the configuration file, then applies environment
// variables and finally the flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}

	cfg = applyOverrides(cfg, newSettings(cmd.Flags()))
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newSettings binds the overridable keys to the environment and to flags.
func newSettings(flags *pflag.FlagSet) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	bindings := map[string]string{
		"extended_author_format": "extended-authors",
		"workers":                "workers",
	}
	for key, name := range bindings {
		if f := flags.Lookup(name); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
	return v
}

func applyOverrides(cfg config.Config, v *viper.Viper) config.Config {
	if v.IsSet("extended_author_format") {
		cfg.ExtendedAuthorFormat = v.GetBool("extended_author_format")
	}
	if v.IsSet("workers") {
		cfg.Workers = v.GetInt("workers")
	}
	return cfg
}

func newEngine(cmd *cobra.Command) (*searchq.Engine, config.Config) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	return searchq.NewEngine(cfg.LegacyOptions()), cfg
}
