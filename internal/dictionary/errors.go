package dictionary

import "errors"

// ErrNotFound reports that the dictionary source has no entry for the word.
// A 200 response with an empty entry array is treated the same way.
var ErrNotFound = errors.New("word not found")
