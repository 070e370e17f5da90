package eventdesk

// DefaultPageSize is the number of events per page when no size is
// configured.
const DefaultPageSize = 5

// Pager slices a derived view into fixed-size pages. It is stateless:
// the current page number lives with the caller, so changing the filter
// or sort never resets it implicitly. Callers that want to stay on a
// valid page after the view shrinks should run the page number through
// Clamp first; Page itself degrades to an empty slice for out-of-range
// pages rather than erroring.
type Pager struct {
	size int
}

// NewPager creates a pager with the given page size.
// Sizes below 1 fall back to DefaultPageSize.
func NewPager(size int) Pager {
	if size < 1 {
		size = DefaultPageSize
	}
	return Pager{size: size}
}

// Size returns the page size.
func (p Pager) Size() int {
	return p.size
}

// TotalPages returns ceil(n / size), with a minimum of 1 so an empty
// view still displays as a single empty page.
func (p Pager) TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + p.size - 1) / p.size
}

// Page returns the 1-indexed page of the view. Pages outside
// [1, TotalPages] yield an empty slice. The result is a subslice of
// view; it shares backing storage with it.
func (p Pager) Page(view []Event, page int) []Event {
	if page < 1 {
		return []Event{}
	}
	start := (page - 1) * p.size
	if start >= len(view) {
		return []Event{}
	}
	end := start + p.size
	if end > len(view) {
		end = len(view)
	}
	return view[start:end]
}

// Clamp forces a page number into [1, TotalPages] for the given view.
func (p Pager) Clamp(view []Event, page int) int {
	if page < 1 {
		return 1
	}
	if total := p.TotalPages(len(view)); page > total {
		return total
	}
	return page
}
