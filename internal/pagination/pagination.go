// Package pagination slices ordered collections into fixed-size pages.
package pagination

// DefaultPageSize is the number of items per board page.
const DefaultPageSize = 10

// Page is one window of a larger ordered collection.
type Page[T any] struct {
	Items   []T
	HasMore bool
}

// Paginate returns the window [(page-1)*size, page*size) of items. The
// window is clipped to the collection and is empty past its end. HasMore
// reports whether items exist beyond the window. page < 1 is treated as 1
// and size < 1 as DefaultPageSize.
func Paginate[T any](items []T, page, size int) Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}

	if page-1 > len(items)/size {
		return Page[T]{Items: items[len(items):], HasMore: false}
	}

	start := (page - 1) * size
	end := min(start+size, len(items))

	return Page[T]{
		Items:   items[start:end:end],
		HasMore: start+size < len(items),
	}
}
