// Package serializers maps entities to wire payloads and back. Output
// builders decide which fields a caller ever sees; input structs list only
// the fields a caller may write, so author, user, post, and slug can only
// come from the handler.
package serializers

import (
	"fmt"
	"time"

	"inkwell/internal/models"
)

// UserPayload exposes the public profile. Name and admin flag are always
// read-only; there is no input struct for users at all.
type UserPayload struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `json:"is_admin"`
}

type CategoryPayload struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type ReplyPayload struct {
	ID          uint        `json:"id"`
	User        UserPayload `json:"user"`
	Content     string      `json:"content"`
	ContentHTML string      `json:"content_html"`
	Timestamp   time.Time   `json:"timestamp"`
}

// CommentPayload embeds its replies and the reply count computed at read
// time. The replays/replays_count field names are part of the public API.
type CommentPayload struct {
	ID          uint           `json:"id"`
	User        UserPayload    `json:"user"`
	Content     string         `json:"content"`
	ContentHTML string         `json:"content_html"`
	Timestamp   time.Time      `json:"timestamp"`
	ReplayCount int            `json:"replays_count"`
	Replays     []ReplyPayload `json:"replays"`
}

type LikePayload struct {
	User UserPayload `json:"user"`
}

type PostPayload struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	ContentHTML string           `json:"content_html"`
	Slug        string           `json:"slug"`
	Image       string           `json:"image"`
	Timestamp   time.Time        `json:"timestamp"`
	Updated     time.Time        `json:"updated"`
	Published   bool             `json:"published"`
	Likes       []LikePayload    `json:"likes"`
	Author      UserPayload      `json:"author"`
	Category    CategoryPayload  `json:"category"`
	Comments    []CommentPayload `json:"comments"`
}

// PostLinkPayload is the list variant: instead of embedding what can be a
// large comment collection, Comments holds the URL of the comments
// endpoint for the post.
type PostLinkPayload struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	ContentHTML string          `json:"content_html"`
	Slug        string          `json:"slug"`
	Image       string          `json:"image"`
	Timestamp   time.Time       `json:"timestamp"`
	Updated     time.Time       `json:"updated"`
	Published   bool            `json:"published"`
	Likes       []LikePayload   `json:"likes"`
	Author      UserPayload     `json:"author"`
	Category    CategoryPayload `json:"category"`
	Comments    string          `json:"comments"`
}

func User(u *models.User) UserPayload {
	return UserPayload{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsAdmin:   u.IsAdmin(),
	}
}

func Category(c *models.Category) CategoryPayload {
	return CategoryPayload{
		ID:    c.ID,
		Title: c.Title,
		Slug:  c.Slug,
	}
}

func Categories(categories []models.Category) []CategoryPayload {
	out := make([]CategoryPayload, len(categories))
	for i := range categories {
		out[i] = Category(&categories[i])
	}
	return out
}

func Reply(r *models.Reply, rendered string) ReplyPayload {
	return ReplyPayload{
		ID:          r.ID,
		User:        User(&r.User),
		Content:     r.Content,
		ContentHTML: rendered,
		Timestamp:   r.CreatedAt,
	}
}

func Like(l *models.Like) LikePayload {
	return LikePayload{User: User(&l.User)}
}

func Likes(likes []models.Like) []LikePayload {
	out := make([]LikePayload, len(likes))
	for i := range likes {
		out[i] = Like(&likes[i])
	}
	return out
}

// CommentsURL builds the hyperlink used by the post list variant.
func CommentsURL(siteURL string, postID uint) string {
	return fmt.Sprintf("%s/posts/%d/comments/", siteURL, postID)
}
