package scaffold

import "sort"

// Options controls a single generation run. The zero value generates
// into the current directory with no license text and the config stub
// included.
type Options struct {
	// Output is the destination root; the package directory is created
	// underneath it. Empty means the current directory.
	Output string

	// Force reuses an existing package directory instead of failing the
	// pre-existence guard. The directory is not cleaned first.
	Force bool

	// SkipConfig leaves out the config stub entirely.
	SkipConfig bool

	// License selects a bundled license body by case-insensitive name.
	// Empty writes an empty LICENSE file.
	License string
}

// licenseTemplates maps accepted license identifiers to their logical
// template paths.
var licenseTemplates = map[string]string{
	"mit":        "licenses/mit.stub",
	"apache 2.0": "licenses/apache2.stub",
	"gnu gpl v3": "licenses/gplv3.stub",
}

// KnownLicenses returns the accepted license identifiers, sorted.
func KnownLicenses() []string {
	names := make([]string, 0, len(licenseTemplates))
	for name := range licenseTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
