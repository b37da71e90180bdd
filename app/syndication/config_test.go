package syndication

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSourcesFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write sources file: %v", err)
	}
	return path
}

func TestLoadSources(t *testing.T) {
	path := writeSourcesFile(t, `
sources:
  - name: Partner Wire
    url: https://partner.example.com/rss
    max_items: 10
    extract_content: true
  - name: City Desk
    url: https://city.example.com/feed.xml
`)

	sources, err := LoadSources(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("Expected 2 sources, got %d", len(sources))
	}
	if sources[0].MaxItems != 10 || !sources[0].ExtractContent {
		t.Errorf("Unexpected first source: %+v", sources[0])
	}
	if sources[1].MaxItems != 25 {
		t.Errorf("Expected default max_items 25, got %d", sources[1].MaxItems)
	}
}

func TestLoadSources_MissingFile(t *testing.T) {
	sources, err := LoadSources(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Errorf("Expected no error for missing file, got: %v", err)
	}
	if sources != nil {
		t.Errorf("Expected nil sources for missing file, got %v", sources)
	}
}

func TestLoadSources_Validation(t *testing.T) {
	path := writeSourcesFile(t, `
sources:
  - url: https://partner.example.com/rss
`)
	if _, err := LoadSources(path); err == nil {
		t.Error("Expected error for source without name")
	}

	path = writeSourcesFile(t, `
sources:
  - name: Partner Wire
`)
	if _, err := LoadSources(path); err == nil {
		t.Error("Expected error for source without URL")
	}
}

func TestLoadSources_InvalidYAML(t *testing.T) {
	path := writeSourcesFile(t, "sources: [not: valid")
	if _, err := LoadSources(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}
