package ghost

import (
	"github.com/voxummah/newsdesk/app/content"
)

// MapPost converts a raw Ghost post into the normalized article shape. This is
// the only place the category of remote content is decided: it always goes
// through the section classifier, never raw tag text.
func MapPost(post Post) content.Article {
	tagNames := make([]string, 0, len(post.Tags))
	for _, tag := range post.Tags {
		tagNames = append(tagNames, tag.Name)
	}

	article := content.Article{
		Id:          post.Id,
		Title:       post.Title,
		Slug:        post.Slug,
		Body:        post.HTML,
		Excerpt:     post.Excerpt,
		ImageURL:    post.FeatureImage,
		Category:    content.SectionFromTags(tagNames),
		ContentType: content.DefaultContentType,
		AuthorName:  content.DefaultAuthorName,
		Published:   true,
		Featured:    post.Featured,
		ViewCount:   0, // view tracking is not implemented at the remote source
		Tags:        tagNames,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}

	if post.Featured {
		article.FeaturedPriority = content.RemoteFeaturedPriority
	}
	if post.PrimaryAuthor != nil && post.PrimaryAuthor.Name != "" {
		article.AuthorName = post.PrimaryAuthor.Name
	}
	if post.PublishedAt != nil {
		article.CreatedAt = *post.PublishedAt
	}
	if article.Excerpt == "" {
		article.Excerpt = content.Excerpt(article.Body, content.DefaultExcerptLength)
	}

	return article
}
