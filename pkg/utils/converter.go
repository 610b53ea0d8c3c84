// Package utils provides utility functions for certgen.
// This file contains data conversion and formatting utilities.
package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// ================================================================================
// JSON Conversion
// ================================================================================

// ToJSON converts an object to a single-line JSON string
func ToJSON(v interface{}) (string, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	return string(bytes), nil
}

// ================================================================================
// Case Conversion
// ================================================================================

// ToSnakeCase converts CamelCase to snake_case. A run of capitals is kept as
// one word, so "CSRPath" becomes "csr_path".
func ToSnakeCase(s string) string {
	runes := []rune(s)
	var result strings.Builder

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				result.WriteRune('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// ================================================================================
// Formatting
// ================================================================================

// FormatFileSize renders a byte count with a binary unit suffix
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
