// Package template provides the bundled scaffolding templates and
// placeholder substitution.
package template

import (
	"sort"
	"strings"
)

// Render substitutes every literal ${token} occurrence in body with the
// matching value from tokens. Placeholders without a matching token are
// left verbatim. Token values must not themselves contain placeholders;
// replacement is literal, with no recursion and no escaping rules.
func Render(body string, tokens map[string]string) string {
	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		body = strings.ReplaceAll(body, "${"+name+"}", tokens[name])
	}

	return body
}
