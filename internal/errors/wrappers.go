package errors

import "fmt"

// Common wrapping patterns used throughout the codebase.

// NewSchemaError creates a schema error located in a schema file
func NewSchemaError(message string, loc SourceLocation) *BaseError {
	return New(SchemaErrorCode, message).WithLocation(loc)
}

// NewValidationError creates a validation error for a schema element
func NewValidationError(element, reason string, loc SourceLocation) *BaseError {
	return Newf(ValidationErrorCode, "invalid %s: %s", element, reason).
		WithLocation(loc).
		WithContext("element", element)
}

// WrapDecodeError wraps a failure to decode a schema file
func WrapDecodeError(path string, cause error) *BaseError {
	return Wrapf(SchemaErrorCode, cause, "failed to decode schema '%s'", path).
		WithContext("path", path)
}

// WrapTypeExprError wraps a failure to parse a type expression
func WrapTypeExprError(expr, element string, cause error) *BaseError {
	return Wrapf(TypeExprErrorCode, cause, "invalid type expression %q in %s", expr, element).
		WithContext("expression", expr).
		WithContext("element", element).
		WithSuggestion("type expressions accept paths, generics, references, and tuples, e.g. Vec<crate::Item>")
}

// WrapGenerateError wraps a failure while emitting generated source
func WrapGenerateError(target string, cause error) *BaseError {
	return Wrapf(GenerationErrorCode, cause, "failed to generate %s", target).
		WithContext("target", target)
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}
