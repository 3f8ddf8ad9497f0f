package jsonquery

// Error represents a failure to compile an operation
type Error struct {
	Extensions map[string]interface{} `json:"extensions"`
	Message    string                 `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// Code returns the code stored in the error's extensions, if there is one
func (e *Error) Code() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

// NewError returns an error with the given code and message
func NewError(code string, message string) *Error {
	return &Error{
		Message: message,
		Extensions: map[string]interface{}{
			"code": code,
		},
	}
}

var (
	// ErrInvalidInput is returned when the operation is missing or is not a mapping
	ErrInvalidInput = NewError("INVALID_INPUT", "query object not specified")
	// ErrEmptyQuery is returned when the operation mapping has no keys
	ErrEmptyQuery = NewError("EMPTY_QUERY", "query object has no data")
)
