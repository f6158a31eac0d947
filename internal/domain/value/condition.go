package value

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCondition = errors.New("unknown condition")

// Condition is the closed set of item conditions a listing can advertise.
type Condition uint8

const (
	ConditionUnknown Condition = iota
	ConditionLikeNew
	ConditionGood
	ConditionVeryGood
	ConditionExcellent
	ConditionFair
)

//nolint:gochecknoglobals
var conditionNames = map[Condition]string{
	ConditionUnknown:   "Unknown",
	ConditionLikeNew:   "Like New",
	ConditionGood:      "Good",
	ConditionVeryGood:  "Very Good",
	ConditionExcellent: "Excellent",
	ConditionFair:      "Fair",
}

// conditionAliases maps normalized spellings a provider may send.
//
//nolint:gochecknoglobals
var conditionAliases = map[string]Condition{
	"like new":  ConditionLikeNew,
	"like_new":  ConditionLikeNew,
	"likenew":   ConditionLikeNew,
	"good":      ConditionGood,
	"very good": ConditionVeryGood,
	"very_good": ConditionVeryGood,
	"verygood":  ConditionVeryGood,
	"excellent": ConditionExcellent,
	"fair":      ConditionFair,
}

func ParseCondition(s string) (Condition, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	if c, ok := conditionAliases[normalized]; ok {
		return c, nil
	}

	return ConditionUnknown, fmt.Errorf("%w: %q", ErrUnknownCondition, s)
}

func (c Condition) String() string {
	if name, ok := conditionNames[c]; ok {
		return name
	}

	return conditionNames[ConditionUnknown]
}

func (c Condition) Known() bool {
	return c != ConditionUnknown && c <= ConditionFair
}

func (c Condition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Condition) UnmarshalText(text []byte) error {
	parsed, err := ParseCondition(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
