package utils

import (
	"strconv"
	"strings"
)

// ParseID parses a positive-or-zero integer path id such as message_id.
func ParseID(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
