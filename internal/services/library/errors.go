package library

import "errors"

var errMissingAfterConflict = errors.New("my list item vanished after insert conflict")
