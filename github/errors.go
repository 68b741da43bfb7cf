package github

import "fmt"

// QueryError reports a failed search call: a transport error or a
// non-success HTTP status. The response body has not been parsed.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("search query %q failed: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not valid JSON or does
// not have the expected search-result shape.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected search response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("unexpected search response: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
