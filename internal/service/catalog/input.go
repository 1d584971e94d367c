package catalog

import "strings"

// EntityInput holds the payload for creating a category or a genre.
type EntityInput struct {
	Name string
	Slug string
}

// normalize trims surrounding whitespace.
func (i *EntityInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Slug = strings.TrimSpace(i.Slug)
}

// ListInput holds search and pagination parameters for catalog listings.
type ListInput struct {
	Search string
	Limit  int
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalize applies defaults and clamps values.
func (i *ListInput) normalize() {
	if i.Limit <= 0 {
		i.Limit = defaultLimit
	}
	if i.Limit > maxLimit {
		i.Limit = maxLimit
	}
	if i.Offset < 0 {
		i.Offset = 0
	}
}
