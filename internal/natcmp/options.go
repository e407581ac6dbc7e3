package natcmp

import "fmt"

// NumberStringPolicy decides the order between a number and literal text
// found at the same position.
type NumberStringPolicy int

const (
	// NumberFirst sorts numbers before text. It is the default.
	NumberFirst NumberStringPolicy = iota
	// StringFirst sorts text before numbers.
	StringFirst
)

// ChineseNumberPolicy decides whether the way a number was written
// overrides its value when two numbers meet.
type ChineseNumberPolicy int

const (
	// Mixed compares numbers by value only. It is the default.
	Mixed ChineseNumberPolicy = iota
	// ChineseFirst sorts Chinese numerals before Arabic ones regardless of value.
	ChineseFirst
	// ChineseLast sorts Arabic numerals before Chinese ones regardless of value.
	ChineseLast
)

// Options configures a comparison. The zero value holds the defaults.
type Options struct {
	NumberString  NumberStringPolicy
	ChineseNumber ChineseNumberPolicy
}

func (p NumberStringPolicy) String() string {
	switch p {
	case NumberFirst:
		return "numberFirst"
	case StringFirst:
		return "stringFirst"
	}
	return fmt.Sprintf("NumberStringPolicy(%d)", int(p))
}

func (p ChineseNumberPolicy) String() string {
	switch p {
	case Mixed:
		return "mixed"
	case ChineseFirst:
		return "first"
	case ChineseLast:
		return "last"
	}
	return fmt.Sprintf("ChineseNumberPolicy(%d)", int(p))
}

// ParseNumberStringPolicy accepts "numberFirst" or "stringFirst".
// The empty string yields the default.
func ParseNumberStringPolicy(s string) (NumberStringPolicy, error) {
	switch s {
	case "", "numberFirst":
		return NumberFirst, nil
	case "stringFirst":
		return StringFirst, nil
	}
	return 0, fmt.Errorf("unknown number/string policy %q", s)
}

// ParseChineseNumberPolicy accepts "mixed", "first" or "last".
// The empty string yields the default.
func ParseChineseNumberPolicy(s string) (ChineseNumberPolicy, error) {
	switch s {
	case "", "mixed":
		return Mixed, nil
	case "first":
		return ChineseFirst, nil
	case "last":
		return ChineseLast, nil
	}
	return 0, fmt.Errorf("unknown chinese number policy %q", s)
}

// ParseOptions builds Options from policy names, falling back to base
// for empty names.
func ParseOptions(base Options, numberString, chineseNumber string) (Options, error) {
	opts := base
	if numberString != "" {
		p, err := ParseNumberStringPolicy(numberString)
		if err != nil {
			return Options{}, err
		}
		opts.NumberString = p
	}
	if chineseNumber != "" {
		p, err := ParseChineseNumberPolicy(chineseNumber)
		if err != nil {
			return Options{}, err
		}
		opts.ChineseNumber = p
	}
	return opts, nil
}
