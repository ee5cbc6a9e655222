package utils

import (
	"strconv"
	"strings"
)

// FormatETag renders a document version as a strong entity tag.
func FormatETag(version int64) string {
	return `"` + strconv.FormatInt(version, 10) + `"`
}

// ParseETag reads a version written by FormatETag. Weak tags ("W/") are
// accepted. ok is false for anything else, including "*".
func ParseETag(tag string) (version int64, ok bool) {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimPrefix(tag, "W/")
	if len(tag) < 2 || tag[0] != '"' || tag[len(tag)-1] != '"' {
		return 0, false
	}

	version, err := strconv.ParseInt(tag[1:len(tag)-1], 10, 64)
	if err != nil || version < 0 {
		return 0, false
	}
	return version, true
}
