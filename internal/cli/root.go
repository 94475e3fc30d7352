package cli

import (
	"fmt"
	"os"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenstamp/greenstamp/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "greenstamp",
	Short: "GreenStamp - ESG report analysis and verification",
	Long: `GreenStamp analyzes ESG and sustainability reports.

It extracts text from PDF, HTML and plain-text documents, runs a
multi-stage analysis (summary, sentiment, topics, metrics, compliance,
risks) against the GRI, SASB and TCFD catalogs, scores reports for
completeness and greenwashing signals, and serves the results over HTTP.

Scores are heuristics over model output, not an audit opinion.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for GreenStamp.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("greenstamp v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.greenstamp/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.greenstamp")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match GREENSTAMP_*
	viper.SetEnvPrefix("GREENSTAMP")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: defaults overlaid with
// the config file and GREENSTAMP_* environment variables
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	if cfg.Inference.Provider == "openai" && cfg.Inference.APIKey == "" {
		cfg.Inference.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	setupLogging(cfg)
	return cfg, nil
}

func setupLogging(cfg *model.Config) {
	level := log.ParseLevel(cfg.Logging.Level)
	if verbose {
		level = log.DebugLevel
	}
	log.DefaultLogger.Level = level
}
