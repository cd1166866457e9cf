package scaffold

import (
	"strconv"
	"strings"
	"time"
)

// Token names understood by the bundled templates.
const (
	TokenVendorName        = "vendorName"
	TokenPackageName       = "packageName"
	TokenNamespace         = "namespace"
	TokenComposerNamespace = "composerNamespace"
	TokenServiceProvider   = "serviceProvider"
	TokenFullPackageName   = "fullPackageName"
	TokenCurrentYear       = "currentYear"
)

// Metadata maps substitution token names to their values. It is built
// once per generation and passed read-only into every rendering call.
type Metadata map[string]string

// BuildMetadata derives the full token set from an identity and a clock
// instant. It is a pure function: same identity and instant, same
// metadata.
func BuildMetadata(id Identity, now time.Time) Metadata {
	vendor := KebabToPascal(id.Vendor)
	pkg := KebabToPascal(id.Name)

	return Metadata{
		TokenVendorName:  id.Vendor,
		TokenPackageName: id.Name,
		TokenNamespace:   vendor + `\` + pkg,
		// Escaped separator for embedding inside JSON string literals.
		TokenComposerNamespace: vendor + `\\` + pkg,
		TokenServiceProvider:   pkg + "ServiceProvider",
		TokenFullPackageName:   strings.ToLower(id.Vendor) + "/" + strings.ToLower(id.Name),
		TokenCurrentYear:       strconv.Itoa(now.Year()),
	}
}

// KebabToPascal capitalizes the first letter of each dash-separated
// segment and concatenates them: "dummy-package" becomes "DummyPackage".
func KebabToPascal(s string) string {
	parts := strings.Split(s, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "")
}
