// Package errors provides structured error handling for sheet-api.
//
// Errors carry a Code, a user-facing Message, an optional wrapped Cause,
// and free-form metadata:
//
//	err := errors.NotFoundf("character %s not found", id).
//	    WithMeta("character_id", id)
//
// Wrapping preserves the code of an already-coded error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// ValidationBuilder accumulates field-level problems and collapses them
// into one InvalidArgument error, so a caller sees every bad field at once.
package errors
