package application

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "historyPath" -> "history path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"path":        "program path",
		"dataDir":     "data directory",
		"indexPath":   "index path",
		"historyPath": "history path",
		"picker":      "picker command",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateAbsolutePath checks that value is a non-empty absolute path.
func ValidateAbsolutePath(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	if !filepath.IsAbs(value) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected absolute %s, got: %s", formatFieldName(fieldName), value),
		}
	}
	return nil
}
