// Package cmd implements the canvas-classifier CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/canvas-classifier/internal/api/client"
)

// defaultServer is used by commands that only work against a running API.
const defaultServer = "http://localhost:8080"

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "canvas-classifier",
		Short: "Classify canvas products in supplier spreadsheets",
		Long: "canvas-classifier labels canvas and panel products found in supplier\n" +
			"order spreadsheets. It runs as an HTTP service or locally from the\n" +
			"terminal, and talks to a running server when --server is set.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "server config file (defaults apply when empty)")
	rootCmd.PersistentFlags().
		String("server", "", "API server URL; commands run locally when empty")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(overridesCmd())
	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(openapiCmd())
	rootCmd.AddCommand(versionCmd())
}

// initConfig loads client settings from $HOME/.canvas-classifier.yaml and
// CANVAS_* environment variables.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigType("yaml")
	viper.SetConfigName(".canvas-classifier")

	viper.SetEnvPrefix("CANVAS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// remote reports whether commands should talk to an API server.
func remote() bool {
	return viper.GetString("server") != ""
}

func newClient() *apiclient.Client {
	server := viper.GetString("server")
	if server == "" {
		server = defaultServer
	}
	return apiclient.New(server, apiclient.WithUserAgent("canvas-classifier/"+Version))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
