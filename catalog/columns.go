package catalog

import (
	"fmt"
	"movie-rec/errors"
	"strconv"
	"strings"
)

// resolveColumn maps a column selector to a zero-based index.
// A selector is either a header name (case-insensitive) or a 1-based "#<n>" position.
func resolveColumn(header []string, selector string) (int, error) {
	trimmed := strings.TrimSpace(selector)
	if trimmed == "" {
		return -1, fmt.Errorf("%w: empty column selector", errors.ErrUnknownColumn)
	}
	for i, col := range header {
		if strings.EqualFold(cleanCell(col), trimmed) {
			return i, nil
		}
	}
	if !strings.HasPrefix(trimmed, "#") {
		return -1, fmt.Errorf("%w: %q", errors.ErrUnknownColumn, selector)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(trimmed, "#")))
	if err != nil || idx <= 0 {
		return -1, fmt.Errorf("%w: invalid column index %q, indices are 1-based", errors.ErrUnknownColumn, selector)
	}
	return idx - 1, nil
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	return strings.TrimPrefix(v, "\ufeff")
}
