package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// SomethingWentWrong is returned when an unexpected state is reached.
	SomethingWentWrong = ErrorKind("Something went wrong")

	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when an argument is invalid.
	InvalidArgument = ErrorKind("Invalid Argument")

	// Unsupported is returned when a feature or value is not supported.
	Unsupported = ErrorKind("Unsupported")

	// Conflict is returned when an operation is rejected by the current state.
	Conflict = ErrorKind("Conflict")

	// Unauthorized is returned when the caller is not allowed to perform an operation.
	Unauthorized = ErrorKind("Unauthorized")

	// InsufficientFunds is returned by the ledger when an account can't cover a transfer.
	InsufficientFunds = ErrorKind("Insufficient Funds")

	Timeout         = ErrorKind("Timeout")
	OverflowUint128 = ErrorKind("overflow uint128")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
