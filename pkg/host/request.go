package host

import (
	"net/http"
	"net/url"
)

// QueryRequest serves query parameters from url.Values.
type QueryRequest url.Values

// NewRequest builds a Request from page/tab pairs, mostly for tests.
func NewRequest(page, tab string) QueryRequest {
	values := url.Values{}
	if page != "" {
		values.Set("page", page)
	}
	if tab != "" {
		values.Set("tab", tab)
	}
	return QueryRequest(values)
}

// FromHTTPRequest exposes the query string of r.
func FromHTTPRequest(r *http.Request) QueryRequest {
	if r == nil || r.URL == nil {
		return QueryRequest{}
	}
	return QueryRequest(r.URL.Query())
}

// Query implements Request.
func (q QueryRequest) Query(name string) (string, bool) {
	values, ok := q[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
