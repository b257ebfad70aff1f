package triage

// Config holds the server settings. Values come from an optional YAML
// config file with CLI flags taking precedence.
type Config struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string `yaml:"addr"`

	// GuidePath is the path to the guide text file.
	GuidePath string `yaml:"guide"`

	// Title is shown in the page header.
	Title string `yaml:"title"`
}

// DefaultConfig returns the config used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		Addr:      ":8000",
		GuidePath: "steps.txt",
		Title:     "Troubleshooting Guide",
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return Errorf(EINVALID, "listen address required")
	}
	if c.GuidePath == "" {
		return Errorf(EINVALID, "guide file path required")
	}
	return nil
}
