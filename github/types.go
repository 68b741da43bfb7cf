package github

// Item is one entry of a search result. The search endpoint returns
// issue-shaped objects; only the fields the verdict and the artifact
// consumers care about are decoded.
type Item struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
}

// SearchResult is the parsed body of one search call, together with
// the raw bytes it was parsed from so callers can write the
// inspection artifact.
type SearchResult struct {
	TotalCount int
	Items      []Item
	Raw        []byte
}

// Contains reports whether any item carries the given PR number.
func (r *SearchResult) Contains(number int) bool {
	for _, item := range r.Items {
		if item.Number == number {
			return true
		}
	}
	return false
}
