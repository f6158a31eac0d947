package errcodes

import "net/http"

type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	InternalServerError   ErrorCode = "InternalServerError"
	ValidationError       ErrorCode = "ValidationError"
	NotFound              ErrorCode = "NotFound"
	InvalidSearchQuery    ErrorCode = "InvalidSearchQuery"
	DataSourceUnavailable ErrorCode = "DataSourceUnavailable"
)

//nolint:gochecknoglobals
var statuses = map[ErrorCode]int{
	InternalServerError:   http.StatusInternalServerError,
	ValidationError:       http.StatusBadRequest,
	NotFound:              http.StatusNotFound,
	InvalidSearchQuery:    http.StatusBadRequest,
	DataSourceUnavailable: http.StatusInternalServerError,
}

// HTTPStatus maps a code to the status the API answers with. Unknown codes
// are treated as internal errors.
func HTTPStatus(code ErrorCode) int {
	if status, ok := statuses[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}
