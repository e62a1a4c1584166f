package response

// Success / default messages.
const (
	MessageSuccess      = "success"
	DefaultErrorMessage = "Something went wrong. Please try again."
)

// Error codes used when the error carries no code of its own.
const (
	CodeOK       = ""
	CodeBadInput = "bad_request"
	CodeInternal = "internal_error"
)

// Marshaling formats for Date / DateTime.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
