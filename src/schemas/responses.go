package schemas

import "net/url"

// JSONResult is the envelope every JSON endpoint answers with.
type JSONResult struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	ID      int64             `json:"id,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
}

// ListQuery is the filter of every maintenance list.
type ListQuery struct {
	Search string `json:"search"`
	Status string `json:"status"`
}

func ListQueryFromValues(values url.Values) ListQuery {
	b := newBinder(values)
	return ListQuery{Search: b.str("search"), Status: b.upper("status")}
}

// Row is a list entry rendered by the generic list view and the exports.
type Row interface {
	RowID() int64
	Cells() []string
}
