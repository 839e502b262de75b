package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownVerb
	ErrMissingArgument
	ErrDispatch
	ErrJournalUnavailable
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown verb
//	  - Journal unavailable
//
//	Exit 2: User input errors
//	  - Missing argument
//	  - Dispatch failures (unknown or incomplete command lines)
var exitCodes = map[ErrorKind]int{
	ErrUnknown:            1,
	ErrUnknownVerb:        1,
	ErrMissingArgument:    2,
	ErrDispatch:           2,
	ErrJournalUnavailable: 1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
func (e *Error) GetExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

var _ error = (*Error)(nil)
