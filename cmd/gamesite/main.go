package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "gamesite",
	Short: "gamesite - a configuration-driven game listing and blog",
	Long: `gamesite serves a game catalog and blog whose pages are composed from
JSON structure files. Sections can be enabled, disabled and reordered by
editing config/structure/*.json, without touching code.`,
	Example: `  # Create a starter site and run it
  gamesite init my-arcade
  cd my-arcade && gamesite serve

  # Check structure and content files before deploying
  gamesite validate --config gamesite.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./gamesite.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
