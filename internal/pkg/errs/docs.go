// Package errs provides the error taxonomy shared by the kitchenpos core.
//
// Every failure the core reports falls into one of three classes:
//   - invalid-input: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - not-found: ObjectNotFoundError
//   - state-conflict: StateConflictError
//
// Each error type wraps a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...)
// so callers classify failures with errors.Is, and each type has a constructor
// with and without an underlying cause. IsInvalidInput matches any of the
// invalid-input sentinels.
package errs
