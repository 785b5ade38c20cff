package pocket

import "fmt"

// MalformedInputError indicates an input stream that cannot be parsed
// at all: a missing header row, undecodable content, or no
// recognizable URL column. It aborts the whole conversion. Individual
// bad rows never produce this error; they are skipped and counted.
type MalformedInputError struct {
	Input string
	Err   error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed input %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("malformed input %q", e.Input)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
