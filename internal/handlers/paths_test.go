package handlers_test

import (
	"fmt"
)

// Route builders for the nested resource paths used across the tests.

func formatPostUpdatePath(postID uint) string {
	return fmt.Sprintf("/posts/update/%d/", postID)
}

func formatPostDeletePath(postID uint) string {
	return fmt.Sprintf("/posts/delete/%d/", postID)
}

func formatCommentListPath(postID uint) string {
	return fmt.Sprintf("/posts/%d/comments/", postID)
}

func formatCommentCreatePath(postID uint) string {
	return fmt.Sprintf("/posts/%d/comments/create/", postID)
}

func formatCommentDetailPath(postID, commentID uint) string {
	return fmt.Sprintf("/posts/%d/comments/%d/", postID, commentID)
}

func formatCommentUpdatePath(postID, commentID uint) string {
	return fmt.Sprintf("/posts/%d/comments/update/%d/", postID, commentID)
}

func formatCommentDeletePath(postID, commentID uint) string {
	return fmt.Sprintf("/posts/%d/comments/delete/%d/", postID, commentID)
}

func formatReplyCreatePath(postID, commentID uint) string {
	return fmt.Sprintf("/posts/%d/comments/%d/replies/create/", postID, commentID)
}

func formatReplyUpdatePath(postID, commentID, replyID uint) string {
	return fmt.Sprintf("/posts/%d/comments/%d/replies/update/%d/", postID, commentID, replyID)
}

func formatReplyDeletePath(postID, commentID, replyID uint) string {
	return fmt.Sprintf("/posts/%d/comments/%d/replies/delete/%d/", postID, commentID, replyID)
}

func formatLikePath(postID uint) string {
	return fmt.Sprintf("/posts/%d/like/", postID)
}

func formatCategoryDetailPath(categoryID uint) string {
	return fmt.Sprintf("/category/%d/", categoryID)
}

func formatCategoryUpdatePath(categoryID uint) string {
	return fmt.Sprintf("/category/update/%d/", categoryID)
}

func formatCategoryDeletePath(categoryID uint) string {
	return fmt.Sprintf("/category/delete/%d/", categoryID)
}
