// Package numeral classifies and parses Chinese numeral characters.
//
// Only the digits 0-9 and the units ten, hundred and thousand are
// understood. Larger units (万, 亿) and decimals are not numerals here.
package numeral

// values maps every recognized rune to its digit or unit value.
// Both the common and the financial (banker's) glyphs are listed.
var values = map[rune]int{
	'零': 0,
	'〇': 0,
	'一': 1,
	'壹': 1,
	'二': 2,
	'贰': 2,
	'三': 3,
	'叁': 3,
	'四': 4,
	'肆': 4,
	'五': 5,
	'伍': 5,
	'六': 6,
	'陆': 6,
	'七': 7,
	'柒': 7,
	'八': 8,
	'捌': 8,
	'九': 9,
	'玖': 9,

	'十': 10,
	'拾': 10,
	'百': 100,
	'佰': 100,
	'千': 1000,
	'仟': 1000,
}

// Lookup returns the value of r: 0-9 for a digit, 10, 100 or 1000 for a
// unit. ok is false if r is not a Chinese numeral character.
func Lookup(r rune) (value int, ok bool) {
	value, ok = values[r]
	return value, ok
}

// IsNumeral reports whether r is a Chinese numeral character.
func IsNumeral(r rune) bool {
	_, ok := values[r]
	return ok
}

// IsUnit reports whether r is one of the unit characters.
func IsUnit(r rune) bool {
	return values[r] >= 10
}

// isLargeUnit covers the hundred and thousand glyphs. Ten is excluded:
// "十" on its own is a number.
func isLargeUnit(r rune) bool {
	return values[r] >= 100
}
