package secrets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvLoader returns a Loader that reads the specified environment variables.
// Missing variables are omitted from the result map.
func EnvLoader(keys ...string) Loader {
	return func() (map[string]string, error) {
		vals := make(map[string]string, len(keys))
		for _, k := range keys {
			if v, ok := os.LookupEnv(k); ok {
				vals[k] = v
			}
		}
		return vals, nil
	}
}

// FileLoader returns a Loader that reads a YAML file containing a flat
// string-to-string map. The file must exist.
func FileLoader(path string) Loader {
	return func() (map[string]string, error) {
		data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from operator config
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		vals := make(map[string]string)
		if err := yaml.Unmarshal(data, &vals); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return vals, nil
	}
}
