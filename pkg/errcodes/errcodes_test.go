package errcodes_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"dealfinder/pkg/errcodes"
)

func TestHTTPStatus(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		code   errcodes.ErrorCode
		status int
	}{
		{code: errcodes.ValidationError, status: http.StatusBadRequest},
		{code: errcodes.InvalidSearchQuery, status: http.StatusBadRequest},
		{code: errcodes.NotFound, status: http.StatusNotFound},
		{code: errcodes.DataSourceUnavailable, status: http.StatusInternalServerError},
		{code: errcodes.InternalServerError, status: http.StatusInternalServerError},
		{code: errcodes.ErrorCode("SomethingElse"), status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.code.String(), func(*testing.T) {
			rq.Equal(tc.status, errcodes.HTTPStatus(tc.code))
		})
	}
}

func TestWrap(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("unexpected EOF")
	err := fmt.Errorf("req.Read: %w", errcodes.Wrap(cause, errcodes.ValidationError, "Invalid JSON"))

	var coded *errcodes.Error

	rq.ErrorAs(err, &coded)
	rq.Equal(errcodes.ValidationError, coded.ErrorCode())
	rq.Equal("Invalid JSON", coded.Description())
	rq.ErrorIs(err, cause)
	rq.EqualError(err, "req.Read: Invalid JSON: unexpected EOF")
}
