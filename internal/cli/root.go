package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qs2rdf",
	Short: "qs2rdf - Convert QuickStatements datasets into Wikidata RDF",
	Long: `qs2rdf converts QuickStatements datasets into RDF following the
Wikidata reified-statement data model.

Each tab-separated input line holds one statement: a subject entity, a main
property, a value, and optional qualifier and reference pairs. Every line
becomes a cluster of triples around a minted statement node, with references
grouped on a provenance node. The accumulated graph is serialized as Turtle.

Malformed lines are skipped with a warning; a run only fails on I/O errors.`,
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
	Long:  `Display the version number and build information for qs2rdf.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("qs2rdf v0.3.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.qs2rdf/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level output")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.debug", rootCmd.PersistentFlags().Lookup("verbose"))

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
		viper.AddConfigPath(home + "/.qs2rdf")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match QS2RDF_*
	viper.SetEnvPrefix("QS2RDF")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
