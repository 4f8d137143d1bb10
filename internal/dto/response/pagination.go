package response

// PageResponse is the ride listing envelope. Next and Previous are absolute
// links or null.
type PageResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPageResponse builds the envelope; link returns the absolute URL of a
// given page number.
func NewPageResponse[T any](results []T, page, pageSize int, total int64, link func(page int) string) *PageResponse[T] {
	resp := &PageResponse[T]{
		Count:   total,
		Results: results,
	}
	if resp.Results == nil {
		resp.Results = []T{}
	}

	if pageSize > 0 && int64(page)*int64(pageSize) < total {
		next := link(page + 1)
		resp.Next = &next
	}
	if page > 1 {
		prev := link(page - 1)
		resp.Previous = &prev
	}

	return resp
}
