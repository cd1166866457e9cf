package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const validManifest = `{
    "name": "dummy/dummy-package",
    "description": "A test package.",
    "license": "MIT",
    "autoload": {
        "psr-4": {
            "Dummy\\DummyPackage\\": "src/"
        }
    },
    "extra": {
        "laravel": {
            "providers": ["Dummy\\DummyPackage\\DummyPackageServiceProvider"]
        }
    },
    "minimum-stability": "stable"
}`

func TestValidateAcceptsGeneratedManifest(t *testing.T) {
	issues, err := Validate([]byte(validManifest))
	require.NoError(t, err)
	require.Empty(t, issues)
}

func TestValidateRejectsMissingName(t *testing.T) {
	issues, err := Validate([]byte(`{"autoload": {}}`))
	require.NoError(t, err)
	require.NotEmpty(t, issues)
}

func TestValidateRejectsBadName(t *testing.T) {
	issues, err := Validate([]byte(`{"name": "NotLowercase/Pkg", "autoload": {}}`))
	require.NoError(t, err)
	require.NotEmpty(t, issues)
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	_, err := Validate([]byte(`{not json`))
	require.Error(t, err)
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "composer.json")
	require.NoError(t, os.WriteFile(path, []byte(validManifest), 0o644))

	issues, err := ValidateFile(path)
	require.NoError(t, err)
	require.Empty(t, issues)

	_, err = ValidateFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}
