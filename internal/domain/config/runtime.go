package config

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	EnvFiles    []string // dotenv files that were loaded, in load order

	// Execution settings
	Debug  bool
	Policy MissingEnvPolicy

	// Resolver inputs and output
	Settings      Settings
	Configuration *Configuration
}
