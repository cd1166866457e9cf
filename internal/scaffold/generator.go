package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/crafthq/craft-cli/internal/template"
)

// planEntry maps a bundled template to its destination inside the
// package directory. Destinations are path templates rendered with the
// same metadata as the file contents.
type planEntry struct {
	templatePath string
	destPath     string
}

var (
	basePlan = []planEntry{
		{templatePath: "gitignore.stub", destPath: ".gitignore"},
		{templatePath: "changelog.stub", destPath: "CHANGELOG.md"},
		{templatePath: "readme.stub", destPath: "README.md"},
	}
	configPlan   = planEntry{templatePath: "config.php.stub", destPath: "config/${packageName}.php"}
	providerPlan = planEntry{templatePath: "service-provider.php.stub", destPath: "src/${serviceProvider}.php"}
	testPlan     = []planEntry{
		{templatePath: "testcase.php.stub", destPath: "tests/TestCase.php"},
		{templatePath: "phpunit.xml.stub", destPath: "phpunit.xml"},
	}
	manifestPlan = planEntry{templatePath: "composer.json.stub", destPath: "composer.json"}
)

// stageNames in execution order.
var stageNames = []string{
	"guard",
	"create root",
	"base files",
	"config",
	"license",
	"service provider",
	"tests",
	"manifest",
}

// Stages returns the generation stage names in execution order.
func Stages() []string {
	out := make([]string, len(stageNames))
	copy(out, stageNames)
	return out
}

// StageObserver is notified when a generation stage starts.
type StageObserver func(stage string)

// Generator orchestrates a full package generation run. Stages execute
// strictly in order and fail fast; completed writes are never rolled
// back.
type Generator struct {
	fs       Filesystem
	mat      *Materializer
	now      func() time.Time
	observer StageObserver
}

// NewGenerator creates a generator over the given template store and
// target filesystem.
func NewGenerator(store *template.Store, fs Filesystem) *Generator {
	return &Generator{
		fs:  fs,
		mat: NewMaterializer(store, fs),
		now: time.Now,
	}
}

// SetObserver registers a callback invoked at the start of every stage.
func (g *Generator) SetObserver(fn StageObserver) {
	g.observer = fn
}

// SetClock overrides the time source used for metadata derivation.
func (g *Generator) SetClock(now func() time.Time) {
	g.now = now
}

// Generate materializes a complete package skeleton for the identity
// under <Output>/<package name>.
func (g *Generator) Generate(id Identity, opts Options) error {
	meta := BuildMetadata(id, g.now())
	root := filepath.Join(outputDir(opts), id.Name)

	g.notify("guard")
	if g.fs.Exists(root) && !opts.Force {
		return fmt.Errorf("%w: %s", ErrDirectoryExists, root)
	}

	g.notify("create root")
	if err := g.fs.CreateDir(root); err != nil {
		return fmt.Errorf("failed to create package directory: %w", err)
	}

	g.notify("base files")
	for _, entry := range basePlan {
		if err := g.materialize(entry, root, meta); err != nil {
			return err
		}
	}
	// The database marker has no backing template; it is always empty.
	if err := g.fs.CreateDir(filepath.Join(root, "database")); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	if err := g.fs.WriteFile(filepath.Join(root, "database", ".gitkeep"), nil); err != nil {
		return fmt.Errorf("failed to create database marker: %w", err)
	}

	g.notify("config")
	if !opts.SkipConfig {
		if err := g.fs.CreateDir(filepath.Join(root, "config")); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := g.materialize(configPlan, root, meta); err != nil {
			return err
		}
	}

	g.notify("license")
	if err := g.writeLicense(root, opts.License, meta); err != nil {
		return err
	}

	g.notify("service provider")
	if err := g.fs.CreateDir(filepath.Join(root, "src")); err != nil {
		return fmt.Errorf("failed to create src directory: %w", err)
	}
	if err := g.materialize(providerPlan, root, meta); err != nil {
		return err
	}

	g.notify("tests")
	if err := g.fs.CreateDir(filepath.Join(root, "tests")); err != nil {
		return fmt.Errorf("failed to create tests directory: %w", err)
	}
	for _, entry := range testPlan {
		if err := g.materialize(entry, root, meta); err != nil {
			return err
		}
	}

	g.notify("manifest")
	return g.materialize(manifestPlan, root, meta)
}

// Plan returns the destination paths Generate would write, relative to
// the package root, without touching the filesystem.
func (g *Generator) Plan(id Identity, opts Options) ([]string, error) {
	meta := BuildMetadata(id, g.now())

	var files []string
	for _, entry := range basePlan {
		files = append(files, template.Render(entry.destPath, meta))
	}
	files = append(files, filepath.Join("database", ".gitkeep"))
	if !opts.SkipConfig {
		files = append(files, template.Render(configPlan.destPath, meta))
	}
	if opts.License != "" {
		if _, ok := licenseTemplates[strings.ToLower(opts.License)]; !ok {
			return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownLicense, opts.License, strings.Join(KnownLicenses(), ", "))
		}
	}
	files = append(files, "LICENSE")
	files = append(files, template.Render(providerPlan.destPath, meta))
	for _, entry := range testPlan {
		files = append(files, template.Render(entry.destPath, meta))
	}
	files = append(files, template.Render(manifestPlan.destPath, meta))

	return files, nil
}

func (g *Generator) materialize(entry planEntry, root string, meta Metadata) error {
	dest := filepath.Join(root, filepath.FromSlash(template.Render(entry.destPath, meta)))
	return g.mat.Materialize(entry.templatePath, dest, meta)
}

// writeLicense selects a bundled license body by case-insensitive name.
// An empty name yields an empty LICENSE file; an unrecognized name is an
// error rather than the historical silent no-op.
func (g *Generator) writeLicense(root, license string, meta Metadata) error {
	dest := filepath.Join(root, "LICENSE")

	if license == "" {
		return g.fs.WriteFile(dest, nil)
	}

	templatePath, ok := licenseTemplates[strings.ToLower(license)]
	if !ok {
		return fmt.Errorf("%w: %q (known: %s)", ErrUnknownLicense, license, strings.Join(KnownLicenses(), ", "))
	}

	return g.mat.Materialize(templatePath, dest, meta)
}

func (g *Generator) notify(stage string) {
	if g.observer != nil {
		g.observer(stage)
	}
}

func outputDir(opts Options) string {
	if opts.Output == "" {
		return "."
	}
	return opts.Output
}
