package config

// EnvValue is a single environment lookup result.
// Set is false when the variable is absent from the environment.
type EnvValue struct {
	Value string
	Set   bool
}

// Missing reports whether the value is absent or empty
func (v EnvValue) Missing() bool {
	return !v.Set || v.Value == ""
}

// Settings holds the externally supplied inputs of the resolver
type Settings struct {
	APIURL     EnvValue
	PrivateKey EnvValue
}

// MissingEnvPolicy decides what happens when a required variable is missing
type MissingEnvPolicy int

const (
	// MissingEnvFail rejects the configuration at startup
	MissingEnvFail MissingEnvPolicy = iota
	// MissingEnvPropagate embeds the empty string and lets downstream tools fail
	MissingEnvPropagate
)

func (p MissingEnvPolicy) String() string {
	switch p {
	case MissingEnvPropagate:
		return "propagate"
	default:
		return "fail"
	}
}
