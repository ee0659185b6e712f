package utils

import "strconv"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
	DefaultTake     = 50
	MaxTake         = 500
)

// Out-of-range pagination input is clamped, never rejected: a request always
// gets a page.

// PageParam parses the page query parameter, defaulting to 1 and flooring
// anything below 1.
func PageParam(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultPage
	}
	if page < 1 {
		return 1
	}
	return page
}

// PageSizeParam parses the pageSize query parameter, defaulting to 10 and
// clamping into [1, 50].
func PageSizeParam(raw string) int {
	size, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultPageSize
	}
	if size < 1 {
		return 1
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// TakeParam parses the take query parameter for the ranking endpoint,
// defaulting to 50 and clamping into [1, 500].
func TakeParam(raw string) int {
	take, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultTake
	}
	if take < 1 {
		return 1
	}
	if take > MaxTake {
		return MaxTake
	}
	return take
}
