package fetchkit

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "tarmac"

// RuntimeConfig carries configuration shared by every capability client.
type RuntimeConfig struct {
	// Namespace is the function namespace used to scope host interactions.
	// If empty, DefaultNamespace is used.
	Namespace string
}

// WithDefaults returns a copy of the configuration with zero values replaced
// by their defaults.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	return c
}

// HostCall is the waPC host function signature used by capability clients.
type HostCall func(namespace, capability, function string, payload []byte) ([]byte, error)
