package errors

import "fmt"

type ErrorWithCode struct {
	Err  error
	Code int
}

func (e *ErrorWithCode) Error() string {
	if e.Err == nil {
		return ""
	}
	return fmt.Sprintf("%s", e.Err)
}

func (e *ErrorWithCode) Unwrap() error {
	return e.Err
}

// ExitCode returns the code carried by err, 1 for any other error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(*ErrorWithCode); ok {
		return e.Code
	}
	return 1
}
