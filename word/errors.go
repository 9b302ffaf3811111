package word

import "errors"

// ErrOverflow is returned when a value does not fit in a word's magnitude
// width.
var ErrOverflow = errors.New("value overflows word width")

// ErrInvalidField is returned by DecodeField when L>R or R exceeds the
// widest field a full word can express.
var ErrInvalidField = errors.New("invalid field specification")
