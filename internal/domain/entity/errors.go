package entity

import "errors"

// ErrMissingData marks a view whose source archives could not be located.
// Callers check for it with errors.Is and skip the view; every other error is
// fatal to the batch.
var ErrMissingData = errors.New("missing data")
