package scaffold

import "errors"

var (
	// ErrInvalidPackageName indicates an identifier that does not split
	// into exactly two non-empty vendor/package segments.
	ErrInvalidPackageName = errors.New("invalid package name: expected \"vendor/package\"")

	// ErrDirectoryExists indicates the destination package directory
	// already exists and force was not requested.
	ErrDirectoryExists = errors.New("package directory already exists")

	// ErrUnknownLicense indicates a license identifier outside the
	// bundled set.
	ErrUnknownLicense = errors.New("unknown license")
)
