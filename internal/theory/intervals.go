package theory

import "strconv"

// intervalLabels maps a semitone offset from the root to its interval name.
// Compound intervals (9, 11, 13) keep their unreduced offsets.
var intervalLabels = map[int]string{
	1:  "b2",
	2:  "2",
	3:  "b3",
	4:  "3",
	5:  "4",
	6:  "b5",
	7:  "5",
	8:  "#5",
	9:  "6",
	10: "b7",
	11: "7",
	14: "9",
	17: "11",
	21: "13",
}

// IntervalLabel returns the label for the offset at the given position in a pattern.
// The first position is always the root ("1"). Offsets with no label fall back to
// their decimal value.
func IntervalLabel(offset, position int) string {
	if position == 0 {
		return "1"
	}
	if label, ok := intervalLabels[offset]; ok {
		return label
	}
	return strconv.Itoa(offset)
}

// IntervalLabels labels every offset of a pattern in order
func IntervalLabels(offsets []int) []string {
	labels := make([]string, len(offsets))
	for i, offset := range offsets {
		labels[i] = IntervalLabel(offset, i)
	}
	return labels
}
