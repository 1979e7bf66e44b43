package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/killallgit/xianplay-api/pkg/config"
	"github.com/killallgit/xianplay-api/pkg/logging"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xianplay-api",
	Short: "XianPlay API server",
	Long: `XianPlay API - short drama catalog aggregation and media relay

This API sits between drama players and an unofficial upstream catalog.
It normalizes the catalog's inconsistent payloads, picks playable stream
URLs, relays cover images past hotlink protection, and keeps a small
per-client library.

Features:
  • Trending, latest, popular, VIP, random and search shelves
  • Episode lists with quality-aware playback URL selection
  • Allow-listed image relay with browser-like request headers
  • My List and watch history keyed by an anonymous client id`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config/settings.yaml", "path to the YAML settings file")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); overrides logging.level")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// setupLogging applies flags first, then configuration, then defaults
func setupLogging(cmd *cobra.Command) {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = config.GetString("logging.level")
	}

	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	if !cmd.Flags().Changed("json-logs") {
		jsonLogs = config.GetString("logging.format") == "json"
	}

	logging.Setup(logging.Options{Level: level, JSON: jsonLogs, Output: cmd.ErrOrStderr()})
}

// loadConfig initializes configuration for commands that need it
func loadConfig() (*config.Config, error) {
	if err := config.InitWithFile(configPath); err != nil {
		return nil, fmt.Errorf("error initializing config: %w", err)
	}
	return config.GetConfig()
}
