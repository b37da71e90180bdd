package syndication

// Source is one partner feed the CMS store ingests from.
type Source struct {
	Name           string `yaml:"name"`
	URL            string `yaml:"url"`
	MaxItems       int    `yaml:"max_items"`
	ExtractContent bool   `yaml:"extract_content"`
}
