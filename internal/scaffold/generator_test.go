package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/crafthq/craft-cli/internal/template"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	gen := NewGenerator(template.NewStore(), OSFilesystem{})
	gen.SetClock(func() time.Time {
		return time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	})
	return gen
}

func testIdentity() Identity {
	return Identity{Vendor: "dummy", Name: "dummy-package"}
}

func TestGenerateFullPackage(t *testing.T) {
	out := t.TempDir()
	gen := newTestGenerator()

	err := gen.Generate(testIdentity(), Options{Output: out, License: "mit"})
	require.NoError(t, err)

	root := filepath.Join(out, "dummy-package")

	// Base files.
	for _, name := range []string{".gitignore", "CHANGELOG.md", "README.md"} {
		require.FileExists(t, filepath.Join(root, name))
	}

	// README equals the template with placeholders substituted.
	raw, err := template.NewStore().Read("readme.stub")
	require.NoError(t, err)
	meta := BuildMetadata(testIdentity(), time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC))
	readme, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	require.Equal(t, template.Render(string(raw), meta), string(readme))

	// Empty database marker.
	marker, err := os.ReadFile(filepath.Join(root, "database", ".gitkeep"))
	require.NoError(t, err)
	require.Empty(t, marker)

	// Config named after the package.
	config, err := os.ReadFile(filepath.Join(root, "config", "dummy-package.php"))
	require.NoError(t, err)
	require.Contains(t, string(config), "dummy-package settings")

	// Service provider.
	provider, err := os.ReadFile(filepath.Join(root, "src", "DummyPackageServiceProvider.php"))
	require.NoError(t, err)
	require.Contains(t, string(provider), "class DummyPackageServiceProvider extends ServiceProvider")
	require.Contains(t, string(provider), `namespace Dummy\DummyPackage;`)

	// Test scaffold.
	testCase, err := os.ReadFile(filepath.Join(root, "tests", "TestCase.php"))
	require.NoError(t, err)
	require.Contains(t, string(testCase), `namespace Dummy\DummyPackage\Tests;`)
	require.Contains(t, string(testCase), `use Dummy\DummyPackage\DummyPackageServiceProvider;`)

	phpunit, err := os.ReadFile(filepath.Join(root, "phpunit.xml"))
	require.NoError(t, err)
	require.Contains(t, string(phpunit), `<testsuite name="dummy-package Test Suite">`)

	// No staging leftovers anywhere.
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)
		require.NotEqual(t, StagingSuffix, filepath.Ext(path))
		return nil
	})
	require.NoError(t, err)
}

func TestGenerateManifest(t *testing.T) {
	out := t.TempDir()
	gen := newTestGenerator()

	require.NoError(t, gen.Generate(testIdentity(), Options{Output: out}))

	data, err := os.ReadFile(filepath.Join(out, "dummy-package", "composer.json"))
	require.NoError(t, err)

	var doc struct {
		Name     string                       `json:"name"`
		Autoload map[string]map[string]string `json:"autoload"`
		Extra    struct {
			Laravel struct {
				Providers []string `json:"providers"`
			} `json:"laravel"`
		} `json:"extra"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Equal(t, "dummy/dummy-package", doc.Name)
	require.Equal(t, "src/", doc.Autoload["psr-4"][`Dummy\DummyPackage\`])
	require.Equal(t, []string{`Dummy\DummyPackage\DummyPackageServiceProvider`}, doc.Extra.Laravel.Providers)
}

func TestGenerateGuard(t *testing.T) {
	out := t.TempDir()
	root := filepath.Join(out, "dummy-package")
	require.NoError(t, os.MkdirAll(root, 0o755))

	gen := newTestGenerator()
	err := gen.Generate(testIdentity(), Options{Output: out})
	require.ErrorIs(t, err, ErrDirectoryExists)

	// The guard fires before any filesystem mutation.
	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	require.Empty(t, entries)
}

func TestGenerateForceReusesDirectory(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(out, "dummy-package"), 0o755))

	gen := newTestGenerator()
	err := gen.Generate(testIdentity(), Options{Output: out, Force: true})
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(out, "dummy-package", "composer.json"))
}

func TestGenerateSkipConfig(t *testing.T) {
	out := t.TempDir()
	gen := newTestGenerator()

	require.NoError(t, gen.Generate(testIdentity(), Options{Output: out, SkipConfig: true}))

	require.NoDirExists(t, filepath.Join(out, "dummy-package", "config"))
}

func TestGenerateLicenseSelection(t *testing.T) {
	t.Run("mit", func(t *testing.T) {
		out := t.TempDir()
		gen := newTestGenerator()
		require.NoError(t, gen.Generate(testIdentity(), Options{Output: out, License: "MIT"}))

		content, err := os.ReadFile(filepath.Join(out, "dummy-package", "LICENSE"))
		require.NoError(t, err)
		require.Contains(t, string(content), "MIT License")
		require.Contains(t, string(content), "Copyright (c) 2026 dummy")
	})

	t.Run("empty writes empty file", func(t *testing.T) {
		out := t.TempDir()
		gen := newTestGenerator()
		require.NoError(t, gen.Generate(testIdentity(), Options{Output: out}))

		content, err := os.ReadFile(filepath.Join(out, "dummy-package", "LICENSE"))
		require.NoError(t, err)
		require.Empty(t, content)
	})

	t.Run("unknown license fails", func(t *testing.T) {
		out := t.TempDir()
		gen := newTestGenerator()
		err := gen.Generate(testIdentity(), Options{Output: out, License: "wtfpl"})
		require.ErrorIs(t, err, ErrUnknownLicense)

		require.NoFileExists(t, filepath.Join(out, "dummy-package", "LICENSE"))
	})
}

func TestGenerateObserverSeesAllStages(t *testing.T) {
	out := t.TempDir()
	gen := newTestGenerator()

	var seen []string
	gen.SetObserver(func(stage string) {
		seen = append(seen, stage)
	})

	require.NoError(t, gen.Generate(testIdentity(), Options{Output: out}))
	require.Equal(t, Stages(), seen)
}

func TestPlan(t *testing.T) {
	gen := newTestGenerator()

	files, err := gen.Plan(testIdentity(), Options{})
	require.NoError(t, err)
	require.Contains(t, files, "README.md")
	require.Contains(t, files, filepath.Join("database", ".gitkeep"))
	require.Contains(t, files, "config/dummy-package.php")
	require.Contains(t, files, "src/DummyPackageServiceProvider.php")
	require.Contains(t, files, "composer.json")

	files, err = gen.Plan(testIdentity(), Options{SkipConfig: true})
	require.NoError(t, err)
	require.NotContains(t, files, "config/dummy-package.php")

	_, err = gen.Plan(testIdentity(), Options{License: "wtfpl"})
	require.ErrorIs(t, err, ErrUnknownLicense)
}
