package richtext

import "regexp"

// Arabic and Arabic Supplement code point ranges.
var rtlPattern = regexp.MustCompile(`[\x{0600}-\x{06FF}\x{0750}-\x{077F}]`)

// DetectDirection returns RightToLeft when the text contains any character
// from the Arabic script ranges, otherwise LeftToRight. A pure function of
// the latest text snapshot; recomputed unconditionally, not cached.
func DetectDirection(text string) Direction {
	if rtlPattern.MatchString(text) {
		return RightToLeft
	}
	return LeftToRight
}
