package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/voxummah/newsdesk/app/content"
)

// Loader reads the bundled fallback article catalog from a directory of YAML
// files. The catalog is what readers see when the remote source is empty or
// unreachable.
type Loader struct {
	catalogDir string
}

func NewLoader(catalogDir string) *Loader {
	return &Loader{catalogDir: catalogDir}
}

type catalogFile struct {
	Articles []content.Article `yaml:"articles"`
}

// Run loads every catalog file in file-name order, concatenates their article
// lists and deduplicates by id, first occurrence winning. A missing directory
// yields an empty catalog, not an error.
func (l *Loader) Run() ([]content.Article, error) {
	if _, err := os.Stat(l.catalogDir); os.IsNotExist(err) {
		slog.Warn("Catalog directory does not exist, fallback catalog is empty", "dir", l.catalogDir)
		return []content.Article{}, nil
	}

	files, err := filepath.Glob(filepath.Join(l.catalogDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YML files: %w", err)
	}
	yamlFiles, err := filepath.Glob(filepath.Join(l.catalogDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YAML files: %w", err)
	}
	files = append(files, yamlFiles...)
	sort.Strings(files)

	var articles []content.Article
	for _, file := range files {
		fileArticles, err := l.loadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}
		articles = append(articles, fileArticles...)
		slog.Debug("Catalog file loaded", "file", file, "articles", len(fileArticles))
	}

	deduped := content.Dedupe(articles)
	slog.Info("Fallback catalog loaded", "files", len(files), "articles", len(deduped))

	return deduped, nil
}

func (l *Loader) loadFile(path string) ([]content.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range file.Articles {
		if err := l.validate(&file.Articles[i]); err != nil {
			return nil, fmt.Errorf("invalid article at index %d: %w", i, err)
		}
		l.setDefaults(&file.Articles[i])
	}

	return file.Articles, nil
}

func (l *Loader) validate(article *content.Article) error {
	if article.Id == "" {
		return fmt.Errorf("article id is required")
	}
	if article.Title == "" {
		return fmt.Errorf("article title is required")
	}
	if article.Slug == "" {
		return fmt.Errorf("article slug is required")
	}
	return nil
}

func (l *Loader) setDefaults(article *content.Article) {
	// Catalog files may carry legacy category labels; anything outside the
	// section catalog is reclassified from tags to keep the one-canonical-
	// category invariant.
	if content.SectionById(article.Category) == nil {
		reclassified := content.SectionFromTags(article.Tags)
		if article.Category != "" {
			slog.Warn("Catalog article has non-canonical category, reclassified",
				"id", article.Id, "category", article.Category, "section", reclassified)
		}
		article.Category = reclassified
	}
	if article.AuthorName == "" {
		article.AuthorName = content.DefaultAuthorName
	}
	if article.ContentType == "" {
		article.ContentType = content.DefaultContentType
	}
	if article.Excerpt == "" {
		article.Excerpt = content.Excerpt(article.Body, content.DefaultExcerptLength)
	}
}
