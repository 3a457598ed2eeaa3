// Package errs provides standardized error types for the pet adoption
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines one typed error per failure kind the system can
// surface to a caller:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or a state transition is not allowed
//   - ObjectNotFoundError: a referenced pet, order, or user does not exist
//   - ConflictError: an operation lost to a competing state change
//   - NotAuthenticatedError: a credential is missing, malformed, or expired
//   - AccessForbiddenError: an authenticated actor lacks the required role
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel, so callers classify with errors.Is
//
// The HTTP adapter maps each sentinel to exactly one status code, which keeps
// error classification out of the handlers and inside the packages that know
// what actually went wrong.
package errs
