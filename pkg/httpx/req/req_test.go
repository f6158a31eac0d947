package req_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dealfinder/pkg/errcodes"
	"dealfinder/pkg/httpx/req"
)

type searchRequest struct {
	Query string `json:"query" validate:"required,max=5"`
}

func TestRead(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		message string
	}{
		{name: "Valid", body: `{"query":"lamp"}`},
		{name: "Invalid JSON", body: `{"query":`, message: "Invalid JSON"},
		{name: "Missing field", body: `{}`, message: "Query is required"},
		{name: "Too long", body: `{"query":"lamps!"}`, message: "Query must be at most 5 characters"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			var dest searchRequest

			err := req.Read(r, &dest)
			if tc.message == "" {
				rq.NoError(err)
				rq.Equal("lamp", dest.Query)

				return
			}

			var coded *errcodes.Error

			rq.ErrorAs(err, &coded)
			rq.Equal(errcodes.ValidationError, coded.ErrorCode())
			rq.Equal(tc.message, coded.Description())
		})
	}
}
