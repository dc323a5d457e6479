// Package errors defines sentinel errors for cenv operations.
//
// Errors are grouped by concern: environment lookup, active-pointer
// switching, trash deletion, and initialization. Call sites wrap these
// with fmt.Errorf("%s: %w", name, err) so callers can both read the
// offending name and match with errors.Is.
package errors
