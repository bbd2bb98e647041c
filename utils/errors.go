package utils

// CustomError is an error that carries the HTTP status it should be reported with.
// Message is shown to the client; the wrapped Err only reaches the logs.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError is a helper to build a CustomError
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// WrapError attaches a status code and a client message to err.
func WrapError(statusCode int, message string, err error) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message, Err: err}
}
