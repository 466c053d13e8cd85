package serializers

import (
	"strings"
	"testing"

	"inkwell/internal/models"
)

func TestUserPayload(t *testing.T) {
	admin := models.User{ID: 1, Username: "alice", FirstName: "Alice", LastName: "A", Role: "admin", Password: "hash"}
	payload := User(&admin)

	if payload.Username != "alice" || !payload.IsAdmin {
		t.Errorf("Unexpected payload: %+v", payload)
	}

	regular := models.User{ID: 2, Username: "bob", Role: "user"}
	if User(&regular).IsAdmin {
		t.Error("Regular user serialized with admin flag set")
	}
}

func TestCommentPayloadReplayCount(t *testing.T) {
	comment := models.Comment{
		ID:      1,
		User:    models.User{ID: 2, Username: "bob"},
		Content: "first!",
		Replies: []models.Reply{
			{ID: 1, User: models.User{ID: 3, Username: "carol"}, Content: "re one"},
			{ID: 2, User: models.User{ID: 2, Username: "bob"}, Content: "re two"},
		},
	}

	payload := Comment(&comment)
	if payload.ReplayCount != 2 {
		t.Errorf("ReplayCount = %d, want 2", payload.ReplayCount)
	}
	if len(payload.Replays) != 2 {
		t.Errorf("Embedded replays = %d, want 2", len(payload.Replays))
	}
	if payload.Replays[0].User.Username != "carol" {
		t.Errorf("Nested reply user = %q", payload.Replays[0].User.Username)
	}
}

func TestPostLinkPayloadCommentsURL(t *testing.T) {
	post := models.Post{
		ID:       42,
		Title:    "Hello World",
		Slug:     "hello-world",
		Author:   models.User{ID: 1, Username: "alice"},
		Category: models.Category{ID: 1, Title: "General", Slug: "general"},
	}

	payload := PostLink(&post, "http://example.test")
	if payload.Comments != "http://example.test/posts/42/comments/" {
		t.Errorf("Comments link = %q", payload.Comments)
	}
	if payload.Author.Username != "alice" {
		t.Errorf("Author = %q", payload.Author.Username)
	}
}

func TestPostPayloadRendersContent(t *testing.T) {
	post := models.Post{
		ID:      1,
		Title:   "T",
		Content: "**bold**",
	}
	payload := Post(&post)
	if !strings.Contains(payload.ContentHTML, "<strong>bold</strong>") {
		t.Errorf("ContentHTML = %q", payload.ContentHTML)
	}
}
