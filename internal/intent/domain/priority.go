package domain

// PriorityLevel orders intents for processing. The numeric values are part of
// the wire contract and must not change.
type PriorityLevel int

// Priority levels, lowest to highest.
const (
	PriorityLow      PriorityLevel = 0
	PriorityNormal   PriorityLevel = 1
	PriorityHigh     PriorityLevel = 2
	PriorityCritical PriorityLevel = 3
)

// priorityLabels maps levels to their human-readable labels.
var priorityLabels = map[PriorityLevel]string{
	PriorityLow:      "Low",
	PriorityNormal:   "Normal",
	PriorityHigh:     "High",
	PriorityCritical: "Critical",
}

// Valid reports whether the level is one of the four defined values.
func (p PriorityLevel) Valid() bool {
	_, ok := priorityLabels[p]
	return ok
}

// Label returns the human-readable label for the level, or "" when invalid.
func (p PriorityLevel) Label() string {
	return priorityLabels[p]
}

// ParsePriorityLabel maps a label ("Low", "Normal", "High", "Critical") back
// to its level. Returns ErrInvalidPriority for any other string.
func ParsePriorityLabel(label string) (PriorityLevel, error) {
	for level, l := range priorityLabels {
		if l == label {
			return level, nil
		}
	}
	return 0, ErrInvalidPriority
}
