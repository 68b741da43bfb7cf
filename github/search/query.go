package search

import (
	"fmt"
	"strings"
)

// Builder constructs GitHub search syntax one qualifier at a time.
// Qualifiers appear in the built query in insertion order.
type Builder struct {
	terms []string
}

// NewBuilder creates an empty query builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Repo restricts the search to a single repository.
func (b *Builder) Repo(owner, name string) *Builder {
	b.terms = append(b.terms, fmt.Sprintf("repo:%s/%s", owner, name))
	return b
}

// Is adds an is: qualifier such as "pr" or "open".
func (b *Builder) Is(term string) *Builder {
	b.terms = append(b.terms, "is:"+term)
	return b
}

// Review adds a review-status qualifier such as "approved" or "required".
func (b *Builder) Review(status string) *Builder {
	b.terms = append(b.terms, "review:"+status)
	return b
}

// AddTerm appends a raw search term verbatim.
func (b *Builder) AddTerm(term string) *Builder {
	b.terms = append(b.terms, term)
	return b
}

// Build constructs the final search query string.
func (b *Builder) Build() string {
	return strings.Join(b.terms, " ")
}
