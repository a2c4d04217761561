package stage

import "strings"

// Stage identifies one step of the fixed import approval sequence.
type Stage string

const (
	PreAlert         Stage = "Pre-Alert"
	COMEXReview      Stage = "COMEX Review"
	QFReview         Stage = "QF Review"
	EntryScheduling  Stage = "Entry Scheduling"
	ArrivalReceiving Stage = "Arrival & Receiving"
	QFRelease        Stage = "QF Release"
	Closed           Stage = "Closed"
)

var catalog = []Stage{
	PreAlert,
	COMEXReview,
	QFReview,
	EntryScheduling,
	ArrivalReceiving,
	QFRelease,
	Closed,
}

var catalogIndex = func() map[Stage]int {
	index := make(map[Stage]int, len(catalog))
	for i, s := range catalog {
		index[s] = i
	}
	return index
}()

// Count returns the number of stages in the catalog.
func Count() int {
	return len(catalog)
}

// All returns the ordered stage catalog.
func All() []Stage {
	cp := make([]Stage, len(catalog))
	copy(cp, catalog)
	return cp
}

// ByIndex returns the stage at the given catalog position.
func ByIndex(i int) (Stage, bool) {
	if i < 0 || i >= len(catalog) {
		return "", false
	}
	return catalog[i], true
}

// IndexOf returns the catalog position of a stage.
func IndexOf(s Stage) (int, bool) {
	i, ok := catalogIndex[s]
	return i, ok
}

// ValidIndex reports whether i addresses a stage in the catalog.
func ValidIndex(i int) bool {
	return i >= 0 && i < len(catalog)
}

// Parse converts free-form input into a known Stage.
func Parse(value string) (Stage, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	for _, s := range catalog {
		if strings.EqualFold(trimmed, string(s)) {
			return s, true
		}
	}
	return "", false
}

// Terminal reports whether the stage permits no further transitions.
func (s Stage) Terminal() bool {
	return s == Closed
}
