package github

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeSearchResult(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantItems []int
		wantParse bool
	}{
		{
			name:      "items present",
			body:      `{"total_count":2,"items":[{"number":42},{"number":7}]}`,
			wantItems: []int{42, 7},
		},
		{
			name:      "empty items",
			body:      `{"total_count":0,"items":[]}`,
			wantItems: []int{},
		},
		{
			name:      "missing items field",
			body:      `{}`,
			wantParse: true,
		},
		{
			name:      "malformed JSON",
			body:      `{"items":`,
			wantParse: true,
		},
		{
			name:      "non-object body",
			body:      `"oops"`,
			wantParse: true,
		},
		{
			name:      "items with extra fields",
			body:      `{"total_count":1,"items":[{"number":3,"title":"fix","state":"open","html_url":"https://github.com/o/r/pull/3"}]}`,
			wantItems: []int{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := decodeSearchResult([]byte(tt.body))

			if tt.wantParse {
				if err == nil {
					t.Fatalf("decodeSearchResult(%q) expected error, got nil", tt.body)
				}
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Errorf("decodeSearchResult(%q) error = %v, want *ParseError", tt.body, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("decodeSearchResult(%q) unexpected error: %v", tt.body, err)
			}

			if len(result.Items) != len(tt.wantItems) {
				t.Fatalf("got %d items, want %d", len(result.Items), len(tt.wantItems))
			}
			for i, number := range tt.wantItems {
				if result.Items[i].Number != number {
					t.Errorf("item %d number = %d, want %d", i, result.Items[i].Number, number)
				}
			}

			if !bytes.Equal(result.Raw, []byte(tt.body)) {
				t.Errorf("Raw = %q, want the original body %q", result.Raw, tt.body)
			}
		})
	}
}

func TestSearchResultContains(t *testing.T) {
	body := `{"items":[{"number":42},{"number":7}]}`
	result, err := decodeSearchResult([]byte(body))
	if err != nil {
		t.Fatalf("decodeSearchResult: %v", err)
	}

	tests := []struct {
		number   int
		expected bool
	}{
		{42, true},
		{7, true},
		{9, false},
		{0, false},
		{-42, false},
	}

	for _, tt := range tests {
		if got := result.Contains(tt.number); got != tt.expected {
			t.Errorf("Contains(%d) = %t, want %t", tt.number, got, tt.expected)
		}
	}
}

func TestSearchResultContainsEmpty(t *testing.T) {
	result := &SearchResult{}
	for _, number := range []int{1, 42, 100} {
		if result.Contains(number) {
			t.Errorf("Contains(%d) on empty result = true, want false", number)
		}
	}
}
