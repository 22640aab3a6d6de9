package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const MaxNameLength = 200

var (
	// injection-looking sequences; stop and bus names are free text otherwise
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

var (
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrNameTooLong      = errors.New("name too long (max 200 characters)")
	ErrInvalidNameChars = errors.New("name contains invalid characters")
)

// ValidateName checks a stop or bus name taken from a request.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if dangerousPattern.MatchString(name) {
		return ErrInvalidNameChars
	}
	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace.
func SanitizeInput(input string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(input, ""))
}

// ValidateRouteParams validates the endpoints of a route query and returns
// the errors per query parameter. An empty map means both are usable.
func ValidateRouteParams(from, to string) map[string][]string {
	fieldErrors := make(map[string][]string)
	if err := ValidateName(from); err != nil {
		fieldErrors["from"] = append(fieldErrors["from"], err.Error())
	}
	if err := ValidateName(to); err != nil {
		fieldErrors["to"] = append(fieldErrors["to"], err.Error())
	}
	return fieldErrors
}
