// Package errs provides the error taxonomy of the locker booking application.
//
// Field-level problems are reported with ValueIsRequiredError, ValueIsInvalidError
// and ValueIsOutOfRangeError; together they form the "validation" class checked by
// IsValidation. ObjectNotFoundError covers lookups by ID. PreconditionFailedError
// blocks a whole operation before any remote call or write happens.
//
// ErrTransport and ErrCacheFetch are sentinels for adapter failures: the locker
// network gateway returns errors that match ErrTransport, and the terminal
// directory wraps failed list fetches in ErrCacheFetch.
//
// Each error type follows the same shape:
//   - A sentinel error variable returned by Unwrap
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - An Error() method that appends "(cause: ...)" when a cause is present
package errs
