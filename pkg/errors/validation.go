package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateOutputPath validates a user-supplied output file path for safety.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 500 characters
//
// Relative and absolute paths are both allowed; the caller decides where
// output lands. This only rejects paths that cannot be legitimate filenames.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "output path too long (max 500 characters)")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}

	if strings.Contains(path, "\x00") {
		return New(ErrCodeInvalidPath, "output path contains null byte")
	}

	return nil
}

// ValidateSheetName validates a spreadsheet sheet name.
// Excel limits sheet names to 31 characters and forbids a handful of
// characters; this mirrors those limits so bad names fail with a clear
// error before the workbook is opened.
func ValidateSheetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidSheet, "sheet name cannot be empty")
	}

	// The 31 limit is in characters, not bytes; CJK sheet names hit the
	// byte count long before the character count.
	if utf8.RuneCountInString(name) > 31 {
		return New(ErrCodeInvalidSheet, "sheet name too long (max 31 characters)")
	}

	if strings.ContainsAny(name, `:\/?*[]`) {
		return New(ErrCodeInvalidSheet, "sheet name contains invalid characters")
	}

	return nil
}
