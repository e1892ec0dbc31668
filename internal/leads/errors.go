package leads

import "errors"

// ErrDuplicateEmail is returned when a lead with the same normalized email
// already exists in the store.
var ErrDuplicateEmail = errors.New("email already registered")
