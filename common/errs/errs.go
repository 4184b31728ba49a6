package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested entity, block or state does not exist in the store.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when a caller passes a malformed value (config, request input, event data).
	InvalidArgument = ErrorKind("Invalid Argument")

	// Unsupported is returned when a configured option (database, datasource, module) is not supported.
	Unsupported = ErrorKind("Unsupported")

	// ConflictSetting is returned when the stored indexer state does not match the running configuration.
	ConflictSetting = ErrorKind("Conflict Setting")

	// InternalError is returned when an invariant of the indexer itself is broken.
	InternalError = ErrorKind("Internal Error")

	// SomethingWentWrong is returned when an unexpected condition stops the indexer.
	SomethingWentWrong = ErrorKind("Something Went Wrong")

	// Timeout is returned when an operation did not finish in time.
	Timeout = ErrorKind("Timeout")

	// Closed is returned when an operation is attempted on a closed resource.
	Closed = ErrorKind("Closed")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
