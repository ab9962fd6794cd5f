package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// ValidateInputPath validates a circuit file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Extension must be .qasm when one is given
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if ext := filepath.Ext(path); ext != "" && !strings.EqualFold(ext, ".qasm") {
		return New(ErrCodeInvalidPath, "expected a .qasm file, got %q", ext)
	}

	return nil
}

// identifierRegex matches pass, metric and pipeline names: lower snake case.
var identifierRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateIdentifier validates a configuration name such as a pass or metric.
// kind names the field in the error message.
func ValidateIdentifier(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "%s name cannot be empty", kind)
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidConfig, "%s name too long (max 64 characters)", kind)
	}
	if !identifierRegex.MatchString(name) {
		return New(ErrCodeInvalidConfig, "invalid %s name: %q", kind, name)
	}
	return nil
}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
}
