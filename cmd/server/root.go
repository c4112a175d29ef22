package main

import (
	"github.com/spf13/cobra"
)

var cfgFile string

// NewRootCmd creates the root command. With no subcommand it serves.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "persona-writer",
		Short: "Persona Writer learns an author's voice and writes blog posts in it.",
		Long: `Persona Writer analyzes writing samples into persona profiles with an
LLM, stores them, and generates new blog posts in a persona's voice.

Configuration comes from .env, an optional config file and the environment.
Examples:
  # Serve on the default port with a local Ollama
  persona-writer serve

  # Create the database schema only
  persona-writer migrate --config ./config.yaml`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")

	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewMigrateCmd())

	return rootCmd
}
