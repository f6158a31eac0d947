package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dealfinder/internal/domain/value"
)

func TestParsePrice(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input string
		price value.Price
		err   bool
	}{
		{name: "With currency sign", input: "$123", price: 123},
		{name: "Bare amount", input: "450", price: 450},
		{name: "Surrounding spaces", input: " $75 ", price: 75},
		{name: "Zero", input: "$0", price: 0},
		{name: "Negative", input: "$-5", err: true},
		{name: "Not a number", input: "$abc", err: true},
		{name: "Decimal", input: "$9.99", err: true},
		{name: "Empty", input: "", err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			price, err := value.ParsePrice(tc.input)
			if tc.err {
				rq.ErrorIs(err, value.ErrInvalidPrice)
				return
			}

			rq.NoError(err)
			rq.Equal(tc.price, price)
		})
	}
}

func TestPriceString(t *testing.T) {
	rq := require.New(t)

	rq.Equal("$349", value.Price(349).String())
	rq.True(value.Price(0).Valid())
	rq.False(value.Price(-1).Valid())
}

func TestParsePriceCeiling(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		input   string
		set     bool
		allows  value.Price
		rejects value.Price
	}{
		{name: "Numeric", input: "300", set: true, allows: 300, rejects: 301},
		{name: "Padded", input: " 50 ", set: true, allows: 50, rejects: 51},
		{name: "Empty means no ceiling", input: "", allows: 100000},
		{name: "Garbage means no ceiling", input: "cheap", allows: 100000},
		{name: "Currency sign is not decimal text", input: "$300", allows: 100000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ceiling := value.ParsePriceCeiling(tc.input)

			rq.Equal(tc.set, ceiling.Set)
			rq.True(ceiling.Allows(tc.allows))

			if tc.set {
				rq.False(ceiling.Allows(tc.rejects))
			}
		})
	}
}
