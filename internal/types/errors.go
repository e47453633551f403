package types

import "fmt"

// Error is the error type for all fallible operations in the system.
// Code identifies the failure; Context carries the offending values
// so failures are diagnosable from the message alone.
type Error struct {
	Code    string
	Context map[string]any
}

func (err Error) Error() string {
	return fmt.Sprintf("%+v: %+v", err.Code, err.Context)
}

// NewError builds an error from a code and alternating context keys
// and values.
func NewError(code string, args ...any) Error {
	n := len(args)
	if n%2 != 0 {
		panic("Invalid error context args")
	}
	err := Error{Code: code, Context: make(map[string]any, n/2)}
	for i := 0; i < n; i += 2 {
		s, ok := args[i].(string)
		if !ok {
			panic("Invalid error context args")
		}
		err.Context[s] = args[i+1]
	}
	return err
}
