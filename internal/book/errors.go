package book

import "errors"

// ErrNoDataFound describes a lookup where every source came back empty.
// The resolver reports it through Resolution.Found, never as a returned error.
var ErrNoDataFound = errors.New("not found in free sources, fill in manually")
