package logic

import (
	"fmt"

	"icsselect/internal/domain"
)

// PageCount returns ceil(total / size)
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Pages partitions [0, total) into consecutive pages of size elements. The
// last page holds the remainder, or a full page when total is a multiple of
// size; there is never an empty trailing page.
func Pages(total, size int) ([]domain.Page, error) {
	if size <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", size)
	}
	if total < 0 {
		return nil, fmt.Errorf("event count must not be negative, got %d", total)
	}

	count := PageCount(total, size)
	pages := make([]domain.Page, 0, count)
	for i := 0; i < count; i++ {
		start := i * size
		end := min(start+size, total)
		pages = append(pages, domain.Page{Number: i, Start: start, End: end})
	}
	return pages, nil
}

// PageOf returns the page number holding index, or -1 if index is outside [0, total)
func PageOf(index, total, size int) int {
	if size <= 0 || index < 0 || index >= total {
		return -1
	}
	return index / size
}
