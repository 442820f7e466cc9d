package timezones

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type optionView struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type optionsResponse struct {
	Results []optionView `json:"results"`
}

// Handler answers GET and HEAD searches with the {"results":[{"id","text"}]}
// payload the picker's ajax transport reads.
func Handler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		zones, err := opts.zones()
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		query := r.URL.Query().Get(opts.SearchParam)
		limit := parseInt(r.URL.Query().Get(opts.LimitParam))
		found := SearchOptions(zones, query, limit, opts)

		resp := optionsResponse{Results: make([]optionView, 0, len(found))}
		for _, opt := range found {
			resp.Results = append(resp.Results, optionView{ID: opt.Value, Text: opt.Label})
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(resp)
	})
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
