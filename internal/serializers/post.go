package serializers

import (
	"inkwell/internal/models"
	"inkwell/internal/utils"
)

func Comment(c *models.Comment) CommentPayload {
	replays := make([]ReplyPayload, len(c.Replies))
	for i := range c.Replies {
		replays[i] = Reply(&c.Replies[i], utils.RenderMarkdown(c.Replies[i].Content))
	}

	return CommentPayload{
		ID:          c.ID,
		User:        User(&c.User),
		Content:     c.Content,
		ContentHTML: utils.RenderMarkdown(c.Content),
		Timestamp:   c.CreatedAt,
		ReplayCount: len(c.Replies),
		Replays:     replays,
	}
}

func Comments(comments []models.Comment) []CommentPayload {
	out := make([]CommentPayload, len(comments))
	for i := range comments {
		out[i] = Comment(&comments[i])
	}
	return out
}

// Post builds the detail payload with the full comment tree embedded.
// Expects Author, Category, Comments (with User and Replies.User) and
// Likes (with User) preloaded.
func Post(p *models.Post) PostPayload {
	return PostPayload{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		ContentHTML: utils.RenderMarkdown(p.Content),
		Slug:        p.Slug,
		Image:       p.Image,
		Timestamp:   p.CreatedAt,
		Updated:     p.UpdatedAt,
		Published:   p.Published,
		Likes:       Likes(p.Likes),
		Author:      User(&p.Author),
		Category:    Category(&p.Category),
		Comments:    Comments(p.Comments),
	}
}

// PostLink builds the list payload, replacing the embedded comments with
// the comments-collection URL for the post.
func PostLink(p *models.Post, siteURL string) PostLinkPayload {
	return PostLinkPayload{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		ContentHTML: utils.RenderMarkdown(p.Content),
		Slug:        p.Slug,
		Image:       p.Image,
		Timestamp:   p.CreatedAt,
		Updated:     p.UpdatedAt,
		Published:   p.Published,
		Likes:       Likes(p.Likes),
		Author:      User(&p.Author),
		Category:    Category(&p.Category),
		Comments:    CommentsURL(siteURL, p.ID),
	}
}

func PostLinks(posts []models.Post, siteURL string) []PostLinkPayload {
	out := make([]PostLinkPayload, len(posts))
	for i := range posts {
		out[i] = PostLink(&posts[i], siteURL)
	}
	return out
}
