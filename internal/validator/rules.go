package validator

import (
	"cmp"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NotBlank is false for "" and for whitespace-only strings.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MaxRunes counts characters, not bytes.
func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

// Between is inclusive at both ends.
func Between[T cmp.Ordered](value, lo, hi T) bool {
	return lo <= value && value <= hi
}
