// Package yaml loads the optional server config file.
package yaml

import (
	"os"

	"github.com/pwielgus/triage"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML config file into base, leaving fields the file
// does not mention untouched. Returns ENOTFOUND if the file does not
// exist and EINVALID if it cannot be parsed.
func LoadConfig(path string, base triage.Config) (triage.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, triage.Errorf(triage.ENOTFOUND, "config file %q not found", path)
		}
		return base, err
	}

	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, triage.Errorf(triage.EINVALID, "invalid config file %q: %s", path, err)
	}

	return base, nil
}
