package content

import (
	"strings"
)

// Section is one canonical content grouping. Tags lists the lowercase feed
// tags that map to it.
type Section struct {
	Id    string   `json:"id"`
	Title string   `json:"title"`
	Color string   `json:"color"`
	Tags  []string `json:"tags"`
}

// DefaultSection is returned when no tag matches any section keyword.
const DefaultSection = "News"

// Sections is the fixed catalog, in priority order: when a tag set matches
// keywords of more than one section, the section listed first wins. The order
// is authoritative and must not be reshuffled without an editorial decision.
var Sections = []Section{
	{Id: "News", Title: "THE PULSE", Color: "brand-red", Tags: []string{"news", "breaking", "politics"}},
	{Id: "Analysis", Title: "ANALYSIS", Color: "section-analysis", Tags: []string{"analysis", "investigation", "deep-dive"}},
	{Id: "Voices", Title: "VOICES", Color: "section-voices", Tags: []string{"voices", "opinion", "commentary"}},
	{Id: "Media", Title: "MEDIA", Color: "section-media", Tags: []string{"media", "video", "watch"}},
	{Id: "Store", Title: "THE STORE", Color: "section-store", Tags: []string{"store", "shop", "merch"}},
	{Id: "Archive", Title: "THE ARCHIVE", Color: "section-archive", Tags: []string{"archive", "history", "collection"}},
	{Id: "Foundations", Title: "FOUNDATIONS", Color: "neutral-800", Tags: []string{"foundations", "theory", "education"}},
	{Id: "Bookshelf", Title: "BOOKSHELF", Color: "neutral-800", Tags: []string{"bookshelf", "books", "review"}},
	{Id: "Circles", Title: "CIRCLES", Color: "section-circles", Tags: []string{"circles", "community", "groups"}},
	{Id: "Entertainment", Title: "ENTERTAINMENT", Color: "brand-green", Tags: []string{"entertainment", "culture"}},
}

// SectionFromTags reduces a free-text tag list to exactly one section id.
// Matching is case-insensitive and exact per keyword. Unrecognized or empty
// input yields DefaultSection.
func SectionFromTags(tags []string) string {
	lowered := make(map[string]bool, len(tags))
	for _, tag := range tags {
		lowered[strings.ToLower(tag)] = true
	}

	for _, section := range Sections {
		for _, keyword := range section.Tags {
			if lowered[keyword] {
				return section.Id
			}
		}
	}

	return DefaultSection
}

// SectionById returns the catalog entry for a section id, or nil when the id
// is not part of the catalog.
func SectionById(id string) *Section {
	for i := range Sections {
		if Sections[i].Id == id {
			return &Sections[i]
		}
	}
	return nil
}
