package repository

import "errors"

// ErrNotFound is returned when a requested record or collection does not
// exist in the backing store.
var ErrNotFound = errors.New("not found")

// ErrUnknownCollection is returned when a caller names a collection outside
// the known set. Engines refuse such names so a crafted backup envelope
// cannot write arbitrary files.
var ErrUnknownCollection = errors.New("unknown collection")
