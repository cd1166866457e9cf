package cmd

import (
	"fmt"

	"github.com/crafthq/craft-cli/internal/scaffold"
	"github.com/spf13/cobra"
)

var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "List the bundled license identifiers",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range scaffold.KnownLicenses() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(licensesCmd)
}
