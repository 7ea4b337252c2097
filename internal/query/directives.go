package query

import (
	"fmt"
	"strconv"
)

// Directive is a rendered $-prefixed request directive. Directives carry
// instructions to the endpoint itself (paging, response format) rather
// than filtering entries.
type Directive string

// ResponseFormat names the response encodings the endpoint understands.
type ResponseFormat string

const (
	// FormatJSON asks for a JSON response.
	FormatJSON ResponseFormat = "json"

	// FormatAflux asks for the native AFLUX key=value response.
	FormatAflux ResponseFormat = "aflux"
)

// Paging asks for the given 1-based page of at most limit entries.
// A non-positive limit emits the single-argument form and leaves the page
// size to the server default.
func Paging(page, limit int) (Directive, error) {
	if page < 1 {
		return "", fmt.Errorf("paging: page %d is not positive", page)
	}
	if limit <= 0 {
		return Directive("$paging(" + strconv.Itoa(page) + ")"), nil
	}
	return Directive("$paging(" + strconv.Itoa(page) + "," + strconv.Itoa(limit) + ")"), nil
}

// Count asks for the number of matching entries instead of the entries
// themselves, using the zero-page form of the paging directive.
func Count() Directive {
	return Directive("$paging(0)")
}

// Format asks for the given response encoding.
func Format(f ResponseFormat) (Directive, error) {
	switch f {
	case FormatJSON, FormatAflux:
		return Directive("$format(" + string(f) + ")"), nil
	default:
		return "", fmt.Errorf("format: unknown response format %q", f)
	}
}
