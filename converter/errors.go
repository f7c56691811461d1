package converter

import "fmt"

// DataError marks a source record too malformed to convert. The batch
// entry point logs it and moves on; it never aborts the whole document.
type DataError struct {
	msg string
}

func (e *DataError) Error() string { return e.msg }

func dataErrorf(format string, args ...any) *DataError {
	return &DataError{msg: fmt.Sprintf(format, args...)}
}
