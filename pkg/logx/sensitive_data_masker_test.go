package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dealfinder/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Location in search request",
			input:  []byte(`{"query":"iphone","location":"Oakland, CA","maxPrice":"300"}`),
			output: []byte(`{"query":"iphone","location":"[MASKED]","maxPrice":"300"}`),
		},
		{
			name:   "Location in every deal",
			input:  []byte(`{"deals":[{"location": "Berkeley, CA"},{"location": "San Jose, CA"}]}`),
			output: []byte(`{"deals":[{"location": "[MASKED]"},{"location": "[MASKED]"}]}`),
		},
		{
			name:   "Bearer token header",
			input:  []byte("POST /api/find-deals HTTP/1.1\r\nAuthorization: Bearer abc.def\r\n"),
			output: []byte("POST /api/find-deals HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\n"),
		},
		{
			name:   "Nothing to mask",
			input:  []byte(`{"query":"gaming laptop"}`),
			output: []byte(`{"query":"gaming laptop"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

func TestNopSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	input := []byte(`{"location":"Oakland, CA"}`)

	rq.Equal(input, logx.NewNopSensitiveDataMasker().Mask(input))
}
