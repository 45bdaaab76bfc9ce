// Package errs provides the error kinds shared by the order service.
//
// Two kinds reach the HTTP boundary:
//   - invalid input: ErrValueIsInvalid and ErrValueIsRequired
//   - not found: ErrObjectNotFound
//
// Each kind has a sentinel error and a struct type carrying the details. The struct
// types unwrap to their sentinel, so callers classify with errors.Is and inspect the
// details with errors.As:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return ctx.JSON(http.StatusNotFound, ...)
//	}
package errs
