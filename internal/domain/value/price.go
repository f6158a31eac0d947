package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPrice = errors.New("invalid price")

// Price is a whole amount of currency units. It is rendered as "$<int>" only
// when it leaves the service.
type Price int64

func ParsePrice(s string) (Price, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "$")

	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	price := Price(amount)
	if !price.Valid() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidPrice, s)
	}

	return price, nil
}

func (p Price) Valid() bool {
	return p >= 0
}

func (p Price) String() string {
	return "$" + strconv.FormatInt(int64(p), 10)
}

// PriceCeiling is the optional upper bound a search puts on listing prices.
type PriceCeiling struct {
	Price Price
	Set   bool
}

// ParsePriceCeiling reads the decimal integer text a caller sends as maxPrice.
// Empty or non-numeric input leaves the ceiling unset.
func ParsePriceCeiling(s string) PriceCeiling {
	amount, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return PriceCeiling{}
	}

	return PriceCeiling{Price: Price(amount), Set: true}
}

// Allows reports whether a listing at price p passes the ceiling.
func (c PriceCeiling) Allows(p Price) bool {
	return !c.Set || p <= c.Price
}

func (c PriceCeiling) String() string {
	if !c.Set {
		return ""
	}

	return strconv.FormatInt(int64(c.Price), 10)
}
