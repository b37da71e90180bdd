package content

// Dedupe removes articles with repeated ids, keeping the first occurrence in
// input order untouched. Later duplicates are discarded entirely, never merged
// field by field. Callers rely on this when combining sources: putting remote
// articles ahead of the fallback catalog makes the remote record win an id
// collision.
func Dedupe(articles []Article) []Article {
	seen := make(map[string]bool, len(articles))
	result := make([]Article, 0, len(articles))

	for _, article := range articles {
		if seen[article.Id] {
			continue
		}
		seen[article.Id] = true
		result = append(result, article)
	}

	return result
}
