package models

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Count    int `json:"count"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Results  []T `json:"results"`
}

// Paginate cuts items into pages of size and returns page number page (1-based).
// A page past the end yields empty results rather than an error.
func Paginate[T any](items []T, page, size int) Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	out := Page[T]{Count: len(items), Page: page, PageSize: size, Results: []T{}}
	// Compare page counts before multiplying so huge page numbers can't overflow.
	if page-1 >= (len(items)+size-1)/size {
		return out
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	out.Results = items[start:end]
	return out
}
