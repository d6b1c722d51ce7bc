// Package errs provides standardized error types for the food-ordering core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ObjectNotFoundError: an order, rider, or other object cannot be found
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a numeric value falls outside its allowed bounds
//   - ValueIsRequiredError: a required value is missing
//   - VersionIsInvalidError: an optimistic-concurrency version check lost a race
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for classification
//
// VersionIsInvalidError deserves a note: it is the error kind surfaced when a
// compare-and-set update touches zero rows, i.e. a concurrent writer won the
// race. Callers translate it to a conflict result rather than retrying.
package errs
