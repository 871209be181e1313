package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Length limits for named fields. Bounds are inclusive and counted in characters.
const (
	MagazineNameMinLength = 2
	MagazineNameMaxLength = 16
	ArticleTitleMinLength = 5
	ArticleTitleMaxLength = 50
)

// ValidateRequired checks that value is non-empty once surrounding whitespace is removed.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "must be a non-empty string"}
	}
	return nil
}

// ValidateLength checks that value has between minLen and maxLen characters inclusive.
// The raw value is measured; whitespace is not trimmed.
func ValidateLength(field, value string, minLen, maxLen int) error {
	n := utf8.RuneCountInString(value)
	if n < minLen || n > maxLen {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters, got %d", minLen, maxLen, n),
		}
	}
	return nil
}
