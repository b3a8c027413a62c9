package service

// SearchRequest represents a paged search request. Sort is accepted and
// echoed back in responses but never applied to ordering; results come
// back in storage order.
type SearchRequest struct {
	Keyword      string `json:"keyword"`
	CurrentPage  int    `json:"current_page"`
	ItemsPerPage int    `json:"items_per_page"`
	Sort         string `json:"sort"`
}
