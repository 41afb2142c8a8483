// Package errs defines the error taxonomy shared by the stores and the
// lookup services.
//
// Every error is a *goerrors.Error carrying a category and a stable text
// code, so callers discriminate by kind instead of matching messages:
//
//   - InvalidArgument: rejected input, raised before any store access
//   - NotFound: the primary store has no row for the id
//   - StoreOperationFailure: the primary store failed for any other reason
package errs

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotFound        = "NOT_FOUND"
	CodeStoreFailure    = "STORE_OPERATION_FAILURE"
)

// InvalidArgument reports input rejected before touching any store.
func InvalidArgument(message string) error {
	return goerrors.New(message, goerrors.CategoryValidation).
		WithTextCode(CodeInvalidArgument)
}

// InvalidEntity wraps a validation failure for an entity of the given kind.
func InvalidEntity(kind string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, fmt.Sprintf("invalid %s", kind)).
		WithTextCode(CodeInvalidArgument).
		WithMetadata(map[string]any{"kind": kind})
}

// NotFound reports that no entity of kind exists under id.
func NotFound(kind string, id int64) error {
	return goerrors.New(fmt.Sprintf("%s with id %d not found", kind, id), goerrors.CategoryNotFound).
		WithTextCode(CodeNotFound).
		WithMetadata(map[string]any{"kind": kind, "id": id})
}

// StoreFailure wraps an unexpected primary store error raised while
// running operation on kind.
func StoreFailure(err error, kind, operation string) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("%s %s failed", operation, kind)).
		WithTextCode(CodeStoreFailure).
		WithMetadata(map[string]any{"kind": kind, "operation": operation})
}

func IsInvalidArgument(err error) bool {
	return hasCode(err, CodeInvalidArgument)
}

func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

func IsStoreFailure(err error) bool {
	return hasCode(err, CodeStoreFailure)
}

func hasCode(err error, code string) bool {
	var e *goerrors.Error
	if !errors.As(err, &e) {
		return false
	}
	return e.TextCode == code
}
