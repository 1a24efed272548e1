// Package errs provides standardized error types for the POS backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes the error taxonomy of the document-store layer:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when a document or view cannot be found
//   - ConflictError: For when a write carries a stale revision token
//   - UnavailableError: For when the document store cannot be reached
//   - ValidationError: For business-rule rejections made before a write
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels, which keeps
// the repository and coordinator retry/fallback policies independent of the
// concrete store adapter producing the error.
package errs
