package bunstore

import (
	"database/sql"
	"errors"

	"github.com/goliatone/go-lookup-cache/errs"
	"github.com/goliatone/go-lookup-cache/model"
)

func mapError(err error, kind model.Kind, id int64, operation string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NotFound(kind.String(), id)
	}
	return errs.StoreFailure(err, kind.String(), operation)
}

// requireAffected turns a write that matched no row into NotFound.
func requireAffected(res sql.Result, kind model.Kind, id int64, operation string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errs.StoreFailure(err, kind.String(), operation)
	}
	if n == 0 {
		return errs.NotFound(kind.String(), id)
	}
	return nil
}
