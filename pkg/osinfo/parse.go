package osinfo

import "strconv"

// ParseUnsignedInt parses s as a base-10 non-negative integer, returning -1
// when s is empty, signed, or otherwise malformed.
func ParseUnsignedInt(s string) int {
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return -1
	}
	return int(n)
}
