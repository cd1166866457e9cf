// Package scaffold implements the package generation engine: it resolves
// a vendor/package identity, derives substitution metadata, and
// materializes the template bundle into a new package directory.
package scaffold

import (
	"fmt"
	"strings"
)

// Identity is a resolved vendor/package pair. Immutable once constructed.
type Identity struct {
	Vendor string
	Name   string
}

// ResolveIdentity parses a "vendor/package" identifier. The identifier
// must split on "/" into exactly two non-empty segments; no further
// character validation is performed.
func ResolveIdentity(identifier string) (Identity, error) {
	parts := strings.Split(identifier, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Identity{}, fmt.Errorf("%w: got %q", ErrInvalidPackageName, identifier)
	}

	return Identity{Vendor: parts[0], Name: parts[1]}, nil
}

func (id Identity) String() string {
	return id.Vendor + "/" + id.Name
}
