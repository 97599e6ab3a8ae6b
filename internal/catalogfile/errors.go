package catalogfile

import "errors"

// ErrUnknownKeys indicates a catalog file contains keys that map to no movie field.
var ErrUnknownKeys = errors.New("unknown keys in catalog file")
