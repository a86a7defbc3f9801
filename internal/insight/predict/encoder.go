package predict

import (
	pstrings "insightboard/pkg/platform/strings"
)

// labelEncoder maps each distinct label to its index in sorted order.
type labelEncoder struct {
	codes map[string]int
}

func newLabelEncoder(labels []string) labelEncoder {
	classes := pstrings.SortedDistinct(labels)
	codes := make(map[string]int, len(classes))
	for i, c := range classes {
		codes[c] = i
	}
	return labelEncoder{codes: codes}
}

// encode returns the code of label, false when it was not seen at fit time.
func (e labelEncoder) encode(label string) (float64, bool) {
	code, ok := e.codes[label]
	return float64(code), ok
}

func (e labelEncoder) size() int {
	return len(e.codes)
}
