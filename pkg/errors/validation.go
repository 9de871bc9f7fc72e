package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateLabel validates free text that ends up inside an SVG text element.
// Control characters, including null bytes and newlines, are rejected. Length
// is not limited; long labels get the smallest font size instead.
//
// An empty label is valid; it means the modifier is off.
func ValidateLabel(option, label string) error {
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidOption, "%s contains invalid control characters", option)
		}
	}
	return nil
}

// ValidateStack validates the echelon stack count.
func ValidateStack(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidOption, "stack must be non-negative, got %d", n)
	}
	return nil
}

// colorRegex accepts the CSS color forms milsymbol styles are written in:
// named colors, #rgb/#rrggbb and rgb()/rgba() functions.
var colorRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|#[0-9a-fA-F]{8}|[a-zA-Z]+|rgba?\(\s*[0-9., %]+\))$`)

// ValidateColor validates a CSS color string. The empty string means unset and is valid.
func ValidateColor(c string) error {
	if c == "" {
		return nil
	}
	if !colorRegex.MatchString(strings.TrimSpace(c)) {
		return New(ErrCodeInvalidColor, "invalid color: %q", c)
	}
	return nil
}
