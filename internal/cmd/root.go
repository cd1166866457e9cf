package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "craft",
	Short: "Craft CLI - Composer package scaffolding",
	Long: `Craft is a CLI tool for scaffolding new Composer packages.
It generates the full package skeleton (service provider, config, tests,
license, manifest) from a bundled template set.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}
