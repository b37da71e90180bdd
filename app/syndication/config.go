package syndication

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads the syndicated feed configuration. A missing file means
// syndication is simply not in use.
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	for i, source := range file.Sources {
		if source.Name == "" {
			return nil, fmt.Errorf("source at index %d has no name", i)
		}
		if source.URL == "" {
			return nil, fmt.Errorf("source %q has no URL", source.Name)
		}
		if file.Sources[i].MaxItems == 0 {
			file.Sources[i].MaxItems = 25
		}
	}

	return file.Sources, nil
}
