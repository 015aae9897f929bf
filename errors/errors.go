package errors

/*
* Error codes are intended to convey detailed errors internally and to clients.
* These should be combined with the appropriate HTTP status code, but are not
* intended to supercede correct HTTP responses. Therefore there is no error code
* for "not found" because HTTP 404 is sufficient.
*
* Error codes are grouped under HTTP status code. These should be returned with
* HTTP 400 unless otherwise stated.
 */

const (

	// HTTP 400 Bad Request.
	// Content does not match Content-Type or the body is unreadable.
	InvalidContent ErrCode = 1
	// A required parameter was absent.
	MissingParameter ErrCode = 2
	// A stored value could not be parsed as the requested type.
	UnexpectedType ErrCode = 3

	// HTTP 500 Internal Server Error.
	// The cache has not been initialised or the store is unreachable.
	CacheUnavailable ErrCode = 4

	// HTTP 502 Bad Gateway.
	// The upstream page fetch failed.
	UpstreamFailed ErrCode = 5
)

// ErrCode identifies a detailed error beyond the HTTP status code.
type ErrCode uint8

// StashError implements the Error interface.
type StashError struct {
	Function     string  `json:"-"`
	ErrorCode    ErrCode `json:"errorCode"`
	ErrorMessage string  `json:"errorDetail"`
}

func (e StashError) Error() string {
	return e.ErrorMessage
}

func New(function string, errCode ErrCode, errMessage string) error {
	return &StashError{
		Function:     function,
		ErrorCode:    errCode,
		ErrorMessage: errMessage,
	}
}
