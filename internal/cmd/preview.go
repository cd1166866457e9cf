package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/crafthq/craft-cli/internal/scaffold"
	"github.com/crafthq/craft-cli/internal/template"
	"github.com/crafthq/craft-cli/internal/watch"
	"github.com/spf13/cobra"
)

var (
	previewOutput       string
	previewTemplatesDir string
	previewIdentifier   string
	previewWatch        bool
)

// sampleIdentifier exercises every token derivation (kebab-case name,
// capitalization, provider class).
const sampleIdentifier = "acme/demo-package"

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the template set into a preview package",
	Long: `Render the full template set with sample metadata into a preview
directory. Useful when authoring template overrides; with --watch the
preview is re-rendered whenever an override file changes.

Examples:
  craft preview
  craft preview --templates=./my-stubs
  craft preview --templates=./my-stubs --watch`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", ".craft-preview", "Preview destination root")
	previewCmd.Flags().StringVar(&previewTemplatesDir, "templates", "", "Directory with template overrides")
	previewCmd.Flags().StringVar(&previewIdentifier, "package", sampleIdentifier, "Sample vendor/package identifier")
	previewCmd.Flags().BoolVarP(&previewWatch, "watch", "w", false, "Re-render when template overrides change")
}

func runPreview(cmd *cobra.Command, args []string) error {
	id, err := scaffold.ResolveIdentity(previewIdentifier)
	if err != nil {
		return err
	}

	store := template.NewStoreWithOverrides(previewTemplatesDir)
	gen := scaffold.NewGenerator(store, scaffold.OSFilesystem{})

	opts := scaffold.Options{
		Output:  previewOutput,
		Force:   true,
		License: "mit",
	}

	render := func() error {
		return gen.Generate(id, opts)
	}

	if err := render(); err != nil {
		return err
	}
	fmt.Printf("✓ Preview rendered to %s\n", previewOutput)

	if !previewWatch {
		return nil
	}
	if previewTemplatesDir == "" {
		return fmt.Errorf("--watch requires --templates")
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "preview",
	})

	watcher, err := watch.New(previewTemplatesDir, 200*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(cmd.Context()); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("watching for template changes", "dir", previewTemplatesDir)

	for {
		select {
		case event := <-watcher.Events():
			logger.Info("template changed", "path", event.Path, "op", event.Type.String())
			if err := render(); err != nil {
				logger.Error("re-render failed", "err", err)
				continue
			}
			logger.Info("preview re-rendered", "dest", previewOutput)
		case err := <-watcher.Errors():
			logger.Error("watch error", "err", err)
		case <-quit:
			logger.Info("stopping preview watcher")
			return nil
		}
	}
}
