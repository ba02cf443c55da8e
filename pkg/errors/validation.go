package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateRange checks that min <= max for the named range.
// Bounds are never swapped: a reversed range is an input error, and so is a
// NaN bound.
func ValidateRange[T int | float64](name string, min, max T) error {
	if !(min <= max) {
		return New(ErrCodeInvalidRange, "%s: min %v > max %v", name, min, max)
	}
	return nil
}

// presetNameRegex matches preset names usable as URL segments and file stems.
var presetNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidatePresetName validates a preset name.
// Names are lowercase so they can be used in routes and filenames as-is.
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidPreset, "preset name too long (max 64 characters)")
	}
	if !presetNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPreset, "invalid preset name: %q", name)
	}
	return nil
}

// ValidateFilename validates an output filename.
// It ensures the filename is a simple basename without path components,
// so presets loaded from files cannot write outside the output directory.
func ValidateFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidConfig, "filename cannot be empty")
	}

	for _, r := range filename {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "filename contains invalid control characters")
		}
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidConfig, "filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidConfig, "filename cannot be a hidden file")
	}

	return nil
}
