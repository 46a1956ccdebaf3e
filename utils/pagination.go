package utils

import "strconv"

// ParsePage reads a 1-based page number; anything missing, non-numeric or
// below 1 means the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
