package serializers

// Input structs carry only client-writable fields. Ownership and derived
// fields (author, user, post, slug) are injected by handlers after
// validation and can never arrive through a bind.

// Optional fields are pointers so an update can tell "omitted" from
// "set to empty" and leave omitted ones untouched.
type PostInput struct {
	Title      string  `json:"title" binding:"required"`
	Content    *string `json:"content"`
	Image      *string `json:"image"`
	CategoryID uint    `json:"category_id"`
	Published  *bool   `json:"published"`
}

type CategoryInput struct {
	Title string `json:"title" binding:"required"`
}

type CommentInput struct {
	Content string `json:"content" binding:"required"`
}

type ReplyInput struct {
	Content string `json:"content" binding:"required"`
}
