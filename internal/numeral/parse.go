package numeral

// Parse converts a run of Chinese numeral characters to its value.
//
// ok is false when the run is not a well-formed numeral:
//   - it contains a rune that Lookup does not recognize,
//   - it is made only of hundred/thousand units ("百", "千千"),
//   - two hundred/thousand units follow each other ("一千百"),
//   - it holds two or more digits and no unit at all ("一二三").
//
// Zero acts as a placeholder, so "一千零一十" is 1010.
func Parse(s string) (n int, ok bool) {
	runes := []rune(s)
	if len(runes) == 0 || !valid(runes) {
		return 0, false
	}

	if len(runes) == 1 {
		v, _ := Lookup(runes[0])
		return v, true
	}

	var result, current int
	for _, r := range runes {
		v, _ := Lookup(r)
		if v >= 10 {
			if current == 0 {
				current = 1
			}
			result += current * v
			current = 0
			continue
		}
		current = v
	}
	return result + current, true
}

func valid(runes []rune) bool {
	var digits, units int
	onlyLarge := true
	prevLarge := false
	for _, r := range runes {
		v, ok := Lookup(r)
		if !ok {
			return false
		}
		large := isLargeUnit(r)
		if large && prevLarge {
			return false
		}
		prevLarge = large
		if !large {
			onlyLarge = false
		}
		if v >= 10 {
			units++
		} else {
			digits++
		}
	}
	if onlyLarge {
		return false
	}
	if units == 0 && digits > 1 {
		return false
	}
	return true
}
