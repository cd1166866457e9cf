package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/crafthq/craft-cli/internal/manifest"
	"github.com/crafthq/craft-cli/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a package's composer.json",
	Long: `Validates the composer.json of a package directory against the bundled
JSON Schema. Defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	manifestPath := filepath.Join(dir, "composer.json")
	issues, err := manifest.ValidateFile(manifestPath)
	if err != nil {
		return err
	}

	if len(issues) == 0 {
		fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("%s %s is valid", ui.IconSuccess, manifestPath)))
		return nil
	}

	fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("%s %s is invalid:", ui.IconError, manifestPath)))
	for _, issue := range issues {
		fmt.Printf("  - %s\n", issue)
	}

	return fmt.Errorf("composer.json failed validation with %d issue(s)", len(issues))
}
