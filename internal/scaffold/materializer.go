package scaffold

import (
	"fmt"

	"github.com/crafthq/craft-cli/internal/template"
)

// StagingSuffix marks a file that has been copied to its destination but
// not yet finalized. It is stripped on the closing rename.
const StagingSuffix = ".stub"

// Materializer copies templates onto the target filesystem, renders
// their placeholders, and finalizes the destination name. Metadata is
// borrowed read-only per call.
type Materializer struct {
	store *template.Store
	fs    Filesystem
}

// NewMaterializer creates a materializer over the given store and
// target filesystem.
func NewMaterializer(store *template.Store, fs Filesystem) *Materializer {
	return &Materializer{store: store, fs: fs}
}

// Materialize writes the template at templatePath to destPath. The raw
// template lands under a staging name first, is rendered in place, and
// is renamed to its final name once rendering completes. There is no
// all-or-nothing guarantee across the three steps; a failure leaves the
// staging file behind.
func (m *Materializer) Materialize(templatePath, destPath string, meta Metadata) error {
	raw, err := m.store.Read(templatePath)
	if err != nil {
		return err
	}

	staging := destPath + StagingSuffix
	if err := m.fs.WriteFile(staging, raw); err != nil {
		return fmt.Errorf("failed to stage %s: %w", destPath, err)
	}

	content, err := m.fs.ReadFile(staging)
	if err != nil {
		return fmt.Errorf("failed to read staged file %s: %w", staging, err)
	}

	rendered := template.Render(string(content), meta)
	if err := m.fs.WriteFile(staging, []byte(rendered)); err != nil {
		return fmt.Errorf("failed to render %s: %w", destPath, err)
	}

	if err := m.fs.Rename(staging, destPath); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", destPath, err)
	}

	return nil
}
