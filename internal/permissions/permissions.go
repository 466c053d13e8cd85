// Package permissions holds the object-level authorization predicates.
// Route-level gates (login, admin role) live in middleware; these checks
// compare the caller against the target entity and run before every
// mutating handler body.
package permissions

import (
	"errors"

	"inkwell/internal/models"
)

// ErrNotCommentOwner carries the fixed denial message returned to clients.
var ErrNotCommentOwner = errors.New("You must be the owner of the comment!")

var ErrNotReplyOwner = errors.New("You must be the owner of the reply!")

// CheckCommentOwner allows the mutation only when the caller wrote the
// comment. Distinct from an authentication failure: the caller is known,
// just not the owner.
func CheckCommentOwner(user *models.User, comment *models.Comment) error {
	if comment.UserID != user.ID {
		return ErrNotCommentOwner
	}
	return nil
}

// CheckReplyOwner is the same rule one level down.
func CheckReplyOwner(user *models.User, reply *models.Reply) error {
	if reply.UserID != user.ID {
		return ErrNotReplyOwner
	}
	return nil
}
