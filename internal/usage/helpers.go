package usage

import "fmt"

// UnknownVerb is returned when the first CLI argument is not a graft verb.
func UnknownVerb(verb string) *Error {
	return &Error{
		Kind:    ErrUnknownVerb,
		Message: fmt.Sprintf("graft: '%s' is not a graft verb. See 'graft help'.", verb),
	}
}

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("graft: missing required argument '%s'", arg),
	}
}

// Dispatch wraps a command-line dispatch failure.
func Dispatch(err error) *Error {
	return &Error{
		Kind:    ErrDispatch,
		Message: fmt.Sprintf("graft: %v", err),
	}
}

// JournalUnavailable is returned when the operation journal cannot be opened.
func JournalUnavailable(err error) *Error {
	return &Error{
		Kind:    ErrJournalUnavailable,
		Message: fmt.Sprintf("graft: journal unavailable: %v", err),
	}
}
