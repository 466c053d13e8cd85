package utils

import (
	gosimple "github.com/gosimple/slug"
)

// Slugify derives the URL identifier from a title. Handlers call this on
// every create and update so the slug never goes stale.
func Slugify(title string) string {
	return gosimple.Make(title)
}
