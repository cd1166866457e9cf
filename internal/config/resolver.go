package config

// Resolver handles configuration precedence: CLI flags > .craft.yaml >
// built-in defaults.
type Resolver struct {
	config *Config
}

// NewResolver creates a resolver over a loaded defaults file.
func NewResolver(config *Config) *Resolver {
	if config == nil {
		config = &Config{}
	}
	return &Resolver{config: config}
}

// ResolveOutput resolves the destination root. Defaults to the current
// directory.
func (r *Resolver) ResolveOutput(cliOutput string) string {
	if cliOutput != "" {
		return cliOutput
	}
	if r.config.Output != "" {
		return r.config.Output
	}
	return "."
}

// ResolveLicense resolves the license identifier. flagSet reports
// whether the CLI flag was given at all, so an explicit --license=""
// (empty LICENSE file) still wins over the defaults file.
func (r *Resolver) ResolveLicense(flagSet bool, cliLicense string) string {
	if flagSet {
		return cliLicense
	}
	return r.config.License
}

// ResolveSkipConfig resolves the skip-config toggle with the same
// flag-presence semantics as ResolveLicense.
func (r *Resolver) ResolveSkipConfig(flagSet, cliValue bool) bool {
	if flagSet {
		return cliValue
	}
	return r.config.SkipConfig
}

// ResolveVendor returns the default vendor segment for prompts.
func (r *Resolver) ResolveVendor() string {
	return r.config.Vendor
}
