package domain

import "errors"

// ErrDuplicateEntry is returned by repositories when a unique constraint
// rejects an insert.
var ErrDuplicateEntry = errors.New("duplicate entry")
