package application

// emojiRange is one inclusive Unicode code point range treated as emoji.
type emojiRange struct {
	lo, hi rune
}

// emojiRanges is the recognized emoji block table. It is data, not logic:
// extending coverage means appending a range here, never touching
// ContainsEmoji. The set covers the common pictograph, symbol, and flag
// blocks plus a handful of singleton symbols GitHub renders as emoji.
var emojiRanges = []emojiRange{
	{0x2300, 0x23FF},   // miscellaneous technical (⌚, ⏰, ⏳)
	{0x25AA, 0x25AB},   // small squares
	{0x25B6, 0x25B6},   // play button
	{0x25C0, 0x25C0},   // reverse button
	{0x25FB, 0x25FE},   // medium squares
	{0x2600, 0x26FF},   // miscellaneous symbols (☀, ⚡, ⛔)
	{0x2700, 0x27BF},   // dingbats (✂, ✅, ➡)
	{0x2934, 0x2935},   // arrow pictographs
	{0x2B50, 0x2B55},   // star, heavy circle and neighbors
	{0x1F1E0, 0x1F1FF}, // regional indicators (flags)
	{0x1F300, 0x1F5FF}, // miscellaneous symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map symbols
	{0x1F900, 0x1F9FF}, // supplemental symbols and pictographs
	{0x1FA00, 0x1FAFF}, // symbols and pictographs extended-A
}

// ContainsEmoji reports whether text contains at least one code point inside
// the recognized emoji ranges.
func ContainsEmoji(text string) bool {
	for _, r := range text {
		for _, er := range emojiRanges {
			if r >= er.lo && r <= er.hi {
				return true
			}
		}
	}
	return false
}
