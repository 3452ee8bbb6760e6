package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *DocError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *DocError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *DocError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Pipeline errors

func SourceDirMissing(path string, cause error) *DocError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "component directory not readable").
		WithContext("path", path)
}

func ReadFailed(path string, cause error) *DocError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to read component source").
		WithContext("path", path)
}

func WriteFailed(path string, cause error) *DocError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to write output").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *DocError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}

func VerificationFailed(problems int) *DocError {
	return New(CategoryBuild, SeverityError, "generated docs failed verification").
		WithContext("problems", problems)
}
