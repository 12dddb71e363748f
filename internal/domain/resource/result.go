package resource

type Meta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// ListResult is the {meta, data} envelope returned by list operations.
type ListResult[T any] struct {
	Meta Meta `json:"meta"`
	Data []T  `json:"data"`
}

type DeleteFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BulkDeleteResult accounts for every attempted id exactly once.
type BulkDeleteResult[T any] struct {
	Deleted  []T             `json:"deleted"`
	NotFound []string        `json:"not_found"`
	Failed   []DeleteFailure `json:"failed"`
}
