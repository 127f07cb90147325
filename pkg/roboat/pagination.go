package roboat

import (
	"context"
	"strconv"
)

// Limit is the page size of a listing endpoint
type Limit int

// Allowed page sizes
const (
	Limit10  Limit = 10
	Limit25  Limit = 25
	Limit50  Limit = 50
	Limit100 Limit = 100
)

// Validate rejects page sizes the remote service does not accept
func (l Limit) Validate() error {
	switch l {
	case Limit10, Limit25, Limit50, Limit100:
		return nil
	}
	return &ValidationError{
		Field:   "limit",
		Message: "must be one of 10, 25, 50, 100",
		Value:   int(l),
	}
}

func (l Limit) String() string {
	return strconv.Itoa(int(l))
}

// Page is one page of a cursor-paginated listing. An empty NextCursor
// marks the final page; an empty Items slice does not.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// IsLast reports whether no further pages exist
func (p *Page[T]) IsLast() bool {
	return p.NextCursor == ""
}

// pagedResponse is the envelope shared by cursor-paginated endpoints
type pagedResponse[T any] struct {
	PreviousPageCursor *string `json:"previousPageCursor"`
	NextPageCursor     *string `json:"nextPageCursor"`
	Data               []T     `json:"data"`
}

func (r *pagedResponse[T]) nextCursor() string {
	if r.NextPageCursor == nil {
		return ""
	}
	return *r.NextPageCursor
}

// PageFunc fetches the page at cursor. An empty cursor means the first page.
type PageFunc[T any] func(ctx context.Context, cursor string) (*Page[T], error)

// Pager walks a listing by threading each page's cursor into the next
// fetch. Cursors are passed back verbatim.
//
// The pager is not safe for concurrent use.
type Pager[T any] struct {
	fetch  PageFunc[T]
	cursor string
	done   bool
}

// NewPager creates a pager starting at the first page
func NewPager[T any](fetch PageFunc[T]) *Pager[T] {
	return &Pager[T]{fetch: fetch}
}

// Next fetches the next page and returns its items, which may be empty
// even when more pages follow. After the final page Next returns nil, nil.
// On error the cursor is not advanced, so Next can be called again.
func (p *Pager[T]) Next(ctx context.Context) ([]T, error) {
	if p.done {
		return nil, nil
	}

	page, err := p.fetch(ctx, p.cursor)
	if err != nil {
		return nil, err
	}

	p.cursor = page.NextCursor
	p.done = page.IsLast()

	return page.Items, nil
}

// Done reports whether the final page has been fetched
func (p *Pager[T]) Done() bool {
	return p.done
}

// Cursor returns the cursor of the page Next will fetch
func (p *Pager[T]) Cursor() string {
	return p.cursor
}

// Collect fetches all remaining pages and returns their items concatenated
func (p *Pager[T]) Collect(ctx context.Context) ([]T, error) {
	var all []T
	for !p.done {
		items, err := p.Next(ctx)
		if err != nil {
			return all, err
		}
		all = append(all, items...)
	}
	return all, nil
}
