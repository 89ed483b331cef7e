// Package pagination parses page/limit query parameters and builds paginated
// responses.
package pagination

import (
	"net/url"
	"strconv"

	"github.com/matt-dz/foodgram/internal/apperr"
)

const (
	DefaultLimit = 6
	MaxLimit     = 100
)

const (
	pageParam  = "page"
	limitParam = "limit"
)

// Page is a 1-based page number and a page size.
type Page struct {
	Number int
	Limit  int
}

func Default() Page {
	return Page{Number: 1, Limit: DefaultLimit}
}

func (p Page) Offset() int32 {
	return int32((p.Number - 1) * p.Limit)
}

func (p Page) SQLLimit() int32 {
	return int32(p.Limit)
}

// FromQuery reads page and limit from q. Missing values take the defaults and
// a limit above MaxLimit is clamped.
func FromQuery(q url.Values) (Page, error) {
	return FromQueryWithDefault(q, DefaultLimit)
}

// FromQueryWithDefault is FromQuery with a caller-chosen default limit.
func FromQueryWithDefault(q url.Values, defaultLimit int) (Page, error) {
	page := Page{Number: 1, Limit: DefaultLimit}
	if defaultLimit > 0 {
		page.Limit = min(defaultLimit, MaxLimit)
	}
	verr := apperr.NewValidationError(apperr.CodeInvalidPage)

	if raw := q.Get(pageParam); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			verr.Add(pageParam, "page must be a positive integer")
		} else {
			page.Number = n
		}
	}

	if raw := q.Get(limitParam); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			verr.Add(limitParam, "limit must be a positive integer")
		} else {
			page.Limit = min(n, MaxLimit)
		}
	}

	if err := verr.Err(); err != nil {
		return Page{}, err
	}
	return page, nil
}

type Result[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func NewResult[T any](count int64, results []T) Result[T] {
	if results == nil {
		results = []T{}
	}
	return Result[T]{Count: count, Results: results}
}

// WithLinks fills Next and Previous with links relative to u.
func (r Result[T]) WithLinks(u *url.URL, page Page) Result[T] {
	if int64(page.Number*page.Limit) < r.Count {
		next := pageURL(u, page.Number+1, page.Limit)
		r.Next = &next
	}
	if page.Number > 1 {
		prev := pageURL(u, page.Number-1, page.Limit)
		r.Previous = &prev
	}
	return r
}

func pageURL(u *url.URL, number, limit int) string {
	link := *u
	q := link.Query()
	q.Set(pageParam, strconv.Itoa(number))
	q.Set(limitParam, strconv.Itoa(limit))
	link.RawQuery = q.Encode()
	return link.String()
}
