package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crafthq/craft-cli/internal/config"
	"github.com/crafthq/craft-cli/internal/manifest"
	"github.com/crafthq/craft-cli/internal/scaffold"
	"github.com/crafthq/craft-cli/internal/template"
	"github.com/crafthq/craft-cli/internal/ui"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	newOutput       string
	newForce        bool
	newSkipConfig   bool
	newLicense      string
	newTemplatesDir string
	newDryRun       bool
	newNoVerify     bool
)

var newCmd = &cobra.Command{
	Use:   "new [vendor/package]",
	Short: "Scaffold a new Composer package",
	Long: `Scaffold a new Composer package skeleton from the bundled templates.

Examples:
  craft new acme/blog-tools
  craft new acme/blog-tools --license=mit
  craft new acme/blog-tools --skip-config --output=packages
  craft new acme/blog-tools --force
  craft new acme/blog-tools --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newOutput, "output", "o", "", "Destination root directory (default: current directory)")
	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "Reuse an existing package directory")
	newCmd.Flags().BoolVar(&newSkipConfig, "skip-config", false, "Skip the config stub")
	newCmd.Flags().StringVar(&newLicense, "license", "", "License identifier (mit, apache 2.0, gnu gpl v3); empty writes an empty LICENSE")
	newCmd.Flags().StringVar(&newTemplatesDir, "templates", "", "Directory with template overrides")
	newCmd.Flags().BoolVar(&newDryRun, "dry-run", false, "Print the files that would be generated without writing")
	newCmd.Flags().BoolVar(&newNoVerify, "no-verify", false, "Skip composer.json validation after generation")
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	resolver := config.NewResolver(cfg)

	// Get the identifier from args or prompt for it.
	var identifier string
	interactive := len(args) == 0
	if !interactive {
		identifier = args[0]
	} else {
		defaultValue := ""
		if vendor := resolver.ResolveVendor(); vendor != "" {
			defaultValue = vendor + "/"
		}
		identifier, err = ui.AskTextValidated("Package name (vendor/package)", defaultValue, func(input string) error {
			_, err := scaffold.ResolveIdentity(input)
			return err
		})
		if err != nil {
			fmt.Println("Package creation cancelled.")
			return nil
		}
	}

	id, err := scaffold.ResolveIdentity(identifier)
	if err != nil {
		return err
	}

	opts := scaffold.Options{
		Output:     resolver.ResolveOutput(newOutput),
		Force:      newForce,
		SkipConfig: resolver.ResolveSkipConfig(cmd.Flags().Changed("skip-config"), newSkipConfig),
		License:    resolver.ResolveLicense(cmd.Flags().Changed("license"), newLicense),
	}

	if interactive {
		if !cmd.Flags().Changed("license") && opts.License == "" {
			choice, err := ui.AskSelect("Which license would you like to use?", append([]string{"none"}, scaffold.KnownLicenses()...))
			if err != nil {
				fmt.Println("Package creation cancelled.")
				return nil
			}
			if choice != "none" {
				opts.License = choice
			}
		}

		fmt.Println("\nPackage Configuration:")
		fmt.Printf("  Name: %s\n", id)
		fmt.Printf("  Destination: %s\n", filepath.Join(opts.Output, id.Name))
		if opts.License != "" {
			fmt.Printf("  License: %s\n", opts.License)
		}
		fmt.Println()

		proceed, err := ui.AskConfirm("Would you like to proceed?")
		if err != nil || !proceed {
			fmt.Println("Package creation cancelled.")
			return nil
		}
	}

	store := template.NewStoreWithOverrides(newTemplatesDir)
	gen := scaffold.NewGenerator(store, scaffold.OSFilesystem{})

	if newDryRun {
		files, err := gen.Plan(id, opts)
		if err != nil {
			return err
		}
		fmt.Printf("Would generate %s:\n", filepath.Join(opts.Output, id.Name))
		for _, file := range files {
			fmt.Printf("  %s\n", file)
		}
		return nil
	}

	stages := scaffold.Stages()
	bar := progressbar.NewOptions(len(stages),
		progressbar.OptionSetDescription("Generating"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
	)
	gen.SetObserver(func(stage string) {
		bar.Describe(stage)
		_ = bar.Add(1)
	})

	if err := gen.Generate(id, opts); err != nil {
		fmt.Fprint(os.Stderr, "\n")
		if errors.Is(err, scaffold.ErrDirectoryExists) {
			return fmt.Errorf("%w (pass --force to reuse the directory)", err)
		}
		return err
	}
	_ = bar.Finish()

	packageDir := filepath.Join(opts.Output, id.Name)

	if !newNoVerify {
		issues, err := manifest.ValidateFile(filepath.Join(packageDir, "composer.json"))
		if err != nil {
			return fmt.Errorf("failed to verify manifest: %w", err)
		}
		for _, issue := range issues {
			fmt.Println(ui.WarningStyle.Render(fmt.Sprintf("%s manifest: %s", ui.IconWarning, issue)))
		}
	}

	fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("%s Package %q created successfully", ui.IconPackage, id)))
	fmt.Printf("✓ Location: %s\n", packageDir)
	fmt.Printf("✓ Run 'cd %s && composer install' to install dependencies\n", packageDir)
	fmt.Printf("✓ Run 'composer test' to run the test suite\n")

	return nil
}
