package pagination

import (
	"net/http/httptest"
	"net/url"
	"reflect"
	"strconv"
	"testing"
)

// testItems creates a list of n numbered items
func testItems(n int) []any {
	items := make([]any, n)
	for i := range items {
		items[i] = map[string]any{"id": i + 1}
	}
	return items
}

// TestPageNumberPaginate tests slicing, counts and link presence across pages
func TestPageNumberPaginate(t *testing.T) {
	p := NewPageNumberPaginator(20, 100)
	items := testItems(45)

	testCases := []struct {
		name         string
		target       string
		firstID      int
		resultCount  int
		wantNext     bool
		wantPrevious bool
	}{
		{"first page default size", "/api/json/list", 1, 20, true, false},
		{"middle page", "/api/json/list?page=2", 21, 20, true, true},
		{"last partial page", "/api/json/list?page=3", 41, 5, false, true},
		{"beyond last page", "/api/json/list?page=9", 0, 0, false, true},
		{"custom page size", "/api/json/list?page_size=10", 1, 10, true, false},
		{"size clamped to max", "/api/json/list?page_size=500", 1, 45, false, false},
		{"malformed page falls back", "/api/json/list?page=abc", 1, 20, true, false},
		{"non-positive size falls back", "/api/json/list?page_size=0", 1, 20, true, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.target, nil)
			resp := p.Paginate(items, r)

			if resp.Count != 45 {
				t.Errorf("Expected count 45, got %d", resp.Count)
			}
			if len(resp.Results) != tc.resultCount {
				t.Fatalf("Expected %d results, got %d", tc.resultCount, len(resp.Results))
			}
			if tc.resultCount > 0 {
				first := resp.Results[0].(map[string]any)
				if first["id"] != tc.firstID {
					t.Errorf("Expected first id %d, got %v", tc.firstID, first["id"])
				}
			}
			if (resp.Next != nil) != tc.wantNext {
				t.Errorf("Next link presence mismatch: got %v", resp.Next)
			}
			if (resp.Previous != nil) != tc.wantPrevious {
				t.Errorf("Previous link presence mismatch: got %v", resp.Previous)
			}
		})
	}
}

// TestPageNumberLinks tests that links are full URLs with the cursor replaced
// and unrelated query parameters preserved
func TestPageNumberLinks(t *testing.T) {
	p := NewPageNumberPaginator(10, 100)
	items := testItems(30)

	r := httptest.NewRequest("GET", "http://example.com/api/json/list?page=2&filter=x", nil)
	resp := p.Paginate(items, r)

	if resp.Next == nil || resp.Previous == nil {
		t.Fatalf("Expected both links on a middle page, got next=%v previous=%v", resp.Next, resp.Previous)
	}

	next, err := url.Parse(*resp.Next)
	if err != nil {
		t.Fatalf("Next link is not a valid URL: %v", err)
	}
	if next.Scheme != "http" || next.Host != "example.com" || next.Path != "/api/json/list" {
		t.Errorf("Unexpected next link base: %s", *resp.Next)
	}
	q := next.Query()
	if q.Get("page") != "3" {
		t.Errorf("Expected next page 3, got %q", q.Get("page"))
	}
	if q.Get("filter") != "x" {
		t.Errorf("Expected unrelated parameters to survive, got %v", q)
	}

	prev, _ := url.Parse(*resp.Previous)
	if prev.Query().Get("page") != "1" {
		t.Errorf("Expected previous page 1, got %q", prev.Query().Get("page"))
	}
}

// TestLimitOffsetPaginate tests slicing and link math for limit/offset
func TestLimitOffsetPaginate(t *testing.T) {
	p := NewLimitOffsetPaginator(20, 100)
	items := testItems(50)

	testCases := []struct {
		name        string
		target      string
		firstID     int
		resultCount int
		nextOffset  int // -1 means no next link
		prevOffset  int // -1 means no previous link
	}{
		{"defaults", "/list", 1, 20, 20, -1},
		{"mid window", "/list?limit=10&offset=15", 16, 10, 25, 5},
		{"previous clamped at zero", "/list?limit=10&offset=5", 6, 10, 15, 0},
		{"tail window", "/list?limit=20&offset=40", 41, 10, -1, 20},
		{"offset beyond end", "/list?offset=99", 0, 0, -1, 79},
		{"limit clamped to max", "/list?limit=1000", 1, 50, -1, -1},
		{"malformed values fall back", "/list?limit=abc&offset=-3", 1, 20, 20, -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.target, nil)
			resp := p.Paginate(items, r)

			if resp.Count != 50 {
				t.Errorf("Expected count 50, got %d", resp.Count)
			}
			if len(resp.Results) != tc.resultCount {
				t.Fatalf("Expected %d results, got %d", tc.resultCount, len(resp.Results))
			}
			if tc.resultCount > 0 {
				first := resp.Results[0].(map[string]any)
				if first["id"] != tc.firstID {
					t.Errorf("Expected first id %d, got %v", tc.firstID, first["id"])
				}
			}

			checkOffset := func(link *string, want int, label string) {
				if want < 0 {
					if link != nil {
						t.Errorf("Expected no %s link, got %s", label, *link)
					}
					return
				}
				if link == nil {
					t.Errorf("Expected a %s link", label)
					return
				}
				u, err := url.Parse(*link)
				if err != nil {
					t.Fatalf("%s link is not a valid URL: %v", label, err)
				}
				if u.Query().Get("offset") != strconv.Itoa(want) {
					t.Errorf("Expected %s offset %d, got %q", label, want, u.Query().Get("offset"))
				}
			}
			checkOffset(resp.Next, tc.nextOffset, "next")
			checkOffset(resp.Previous, tc.prevOffset, "previous")
		})
	}
}

// TestWantsLimitOffset tests paginator selection from query parameters
func TestWantsLimitOffset(t *testing.T) {
	testCases := map[string]bool{
		"/list":                false,
		"/list?page=2":         false,
		"/list?limit=5":        true,
		"/list?offset=10":      true,
		"/list?limit=5&page=1": true,
	}
	for target, expected := range testCases {
		r := httptest.NewRequest("GET", target, nil)
		if got := WantsLimitOffset(r); got != expected {
			t.Errorf("WantsLimitOffset(%q) = %v, expected %v", target, got, expected)
		}
	}
}

// TestPaginateEmpty tests the empty-list edge case for both strategies. A nil
// items slice behaves like an empty one; results is never nil so the envelope
// always encodes it as a JSON list.
func TestPaginateEmpty(t *testing.T) {
	r := httptest.NewRequest("GET", "/list", nil)

	for name, p := range map[string]IPaginator{
		"page-number":  NewPageNumberPaginator(20, 100),
		"limit-offset": NewLimitOffsetPaginator(20, 100),
	} {
		t.Run(name, func(t *testing.T) {
			for _, items := range [][]any{{}, nil} {
				resp := p.Paginate(items, r)
				if resp.Count != 0 || len(resp.Results) != 0 {
					t.Errorf("Expected empty response, got %+v", resp)
				}
				if resp.Next != nil || resp.Previous != nil {
					t.Errorf("Expected no links, got next=%v previous=%v", resp.Next, resp.Previous)
				}
				if !reflect.DeepEqual(resp.Results, []any{}) {
					t.Errorf("Expected empty non-nil results slice, got %#v", resp.Results)
				}
			}
		})
	}
}
