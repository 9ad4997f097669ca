package cli

// Exit codes for the qfixed command.
const (
	ExitOK           = 0
	ExitFailures     = 1
	ExitCommandError = 2
)

// ExitError carries an exit code through cobra's error return.
type ExitError struct {
	Code int
	Msg  string
}

// NewExitError returns an ExitError with the given code and message.
func NewExitError(code int, msg string) *ExitError {
	return &ExitError{Code: code, Msg: msg}
}

func (e *ExitError) Error() string {
	return e.Msg
}
