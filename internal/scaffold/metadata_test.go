package scaffold

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKebabToPascal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dummy-package", "DummyPackage"},
		{"dummy", "Dummy"},
		{"a-b-c", "ABC"},
		{"already", "Already"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, KebabToPascal(tt.in))
	}
}

func TestBuildMetadata(t *testing.T) {
	id := Identity{Vendor: "dummy", Name: "dummy-package"}
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	meta := BuildMetadata(id, now)

	require.Equal(t, "dummy", meta[TokenVendorName])
	require.Equal(t, "dummy-package", meta[TokenPackageName])
	require.Equal(t, `Dummy\DummyPackage`, meta[TokenNamespace])
	require.Equal(t, `Dummy\\DummyPackage`, meta[TokenComposerNamespace])
	require.Equal(t, "DummyPackageServiceProvider", meta[TokenServiceProvider])
	require.Equal(t, "dummy/dummy-package", meta[TokenFullPackageName])
	require.Equal(t, "2026", meta[TokenCurrentYear])
}

func TestBuildMetadataLowercasesFullName(t *testing.T) {
	id := Identity{Vendor: "Dummy", Name: "Dummy-Package"}
	meta := BuildMetadata(id, time.Now())

	require.Equal(t, "dummy/dummy-package", meta[TokenFullPackageName])
}

func TestBuildMetadataDeterministic(t *testing.T) {
	id := Identity{Vendor: "acme", Name: "demo-package"}
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, BuildMetadata(id, now), BuildMetadata(id, now))
}
