package storage

import "errors"

// Transaction misuse. Begin refuses to nest and Commit or Rollback need a
// handle obtained from Begin.
var (
	ErrAlreadyInTx = errors.New("storage: transaction already open")
	ErrNotInTx     = errors.New("storage: no open transaction")
)
