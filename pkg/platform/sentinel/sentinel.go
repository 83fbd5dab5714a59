package sentinel

import "errors"

// ErrNotFound is the infrastructure fact a store returns (optionally wrapped)
// when an entity does not exist. Callers translate it into a domain error at
// the service boundary. For validation errors (bad input, missing fields),
// use pkg/domain-errors directly.
var ErrNotFound = errors.New("not found")
